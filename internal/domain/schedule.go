package domain

import (
	"errors"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekdayOf maps a calendar date to the template key for its weekday.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// TimeRange is an open window within a day, both bounds in HH:mm.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyAvailability is the recurring template: open time ranges keyed by
// weekday. Days without an entry are fully unavailable.
type WeeklyAvailability map[Weekday][]TimeRange

// Ranges returns the open ranges for a weekday, empty for unset days.
func (w WeeklyAvailability) Ranges(d Weekday) []TimeRange {
	if w == nil {
		return nil
	}
	return w[d]
}

// BookingConfig carries the scheduling knobs and the weekly template. It is
// supplied per call and owned by the caller; all derived state is computed
// on demand, so replacing it invalidates nothing.
type BookingConfig struct {
	SlotDuration       int                `json:"slot_duration"` // minutes
	BufferTime         int                `json:"buffer_time"`   // minutes between slots
	WeeklyAvailability WeeklyAvailability `json:"weekly_availability"`
	MaxSeriesCount     int                `json:"max_series_count"`
	MinAdvanceHours    int                `json:"min_advance_hours,omitempty"`
	MaxAdvanceDays     *int               `json:"max_advance_days,omitempty"`
}

var (
	ErrBadSlotDuration   = errors.New("slot duration must be positive")
	ErrBadMaxSeriesCount = errors.New("max series count must be at least 1")
)

func (c BookingConfig) Validate() error {
	if c.SlotDuration <= 0 {
		return ErrBadSlotDuration
	}
	if c.MaxSeriesCount < 1 {
		return ErrBadMaxSeriesCount
	}
	return nil
}

// DefaultBookingConfig is used until an operator saves a schedule:
// hour-long slots on weekday business hours, up to 10 repetitions.
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		SlotDuration:   60,
		BufferTime:     0,
		MaxSeriesCount: 10,
		WeeklyAvailability: WeeklyAvailability{
			Monday:    {{Start: "09:00", End: "17:00"}},
			Tuesday:   {{Start: "09:00", End: "17:00"}},
			Wednesday: {{Start: "09:00", End: "17:00"}},
			Thursday:  {{Start: "09:00", End: "17:00"}},
			Friday:    {{Start: "09:00", End: "17:00"}},
		},
	}
}
