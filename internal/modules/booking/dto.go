package booking

type CreateBookingRequest struct {
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Message     string `json:"message"`
	Recurrence  string `json:"recurrence"`   // once (default) | weekly | biweekly
	SeriesCount int    `json:"series_count"` // defaults to 1
}

type SeriesAvailabilityResponse struct {
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Recurrence     string `json:"recurrence"`
	AvailableCount int    `json:"available_count"`
}
