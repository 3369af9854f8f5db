package domain

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeSlot is one bookable window on a given date. Slots are ephemeral:
// recomputed on every query and never persisted.
type TimeSlot struct {
	ID                   string    `json:"id"`
	Date                 string    `json:"date"` // YYYY-MM-DD
	StartTime            string    `json:"start_time"`
	EndTime              string    `json:"end_time"`
	TimeOfDay            TimeOfDay `json:"time_of_day"`
	IsAvailable          bool      `json:"is_available"`
	AvailableSeriesCount int       `json:"available_series_count,omitempty"`
}

type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayPartial   DayStatus = "partial"
	DayNone      DayStatus = "none"
)

// DayAvailability summarises one day's slots after conflict resolution.
type DayAvailability struct {
	Date           string     `json:"date"`
	AvailableCount int        `json:"available_count"`
	TotalCount     int        `json:"total_count"`
	Status         DayStatus  `json:"status"`
	Slots          []TimeSlot `json:"slots"`
}

// MonthData lists the bookable days of one month, today-forward, in
// ascending date order.
type MonthData struct {
	Year  int               `json:"year"`
	Month int               `json:"month"` // 1-12
	Days  []DayAvailability `json:"days"`
}
