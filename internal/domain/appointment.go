package domain

import "time"

type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Recurrence string

const (
	RecurrenceOnce     Recurrence = "once"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
)

// IntervalDays returns the number of days between two occurrences of a
// repeating booking, or 0 for a non-repeating one.
func (r Recurrence) IntervalDays() int {
	switch r {
	case RecurrenceWeekly:
		return 7
	case RecurrenceBiweekly:
		return 14
	default:
		return 0
	}
}

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceOnce, RecurrenceWeekly, RecurrenceBiweekly:
		return true
	}
	return false
}

// Appointment is a booked time window. The appointment list is the sole
// source of truth for occupancy; cancellation is a soft delete and never
// removes a record.
type Appointment struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"` // YYYY-MM-DD
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	ClientName  string            `json:"client_name"`
	ClientEmail string            `json:"client_email"`
	Message     string            `json:"message,omitempty"`
	IsSeries    bool              `json:"is_series"`
	SeriesID    string            `json:"series_id,omitempty"`
	Recurrence  Recurrence        `json:"recurrence,omitempty"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// BookingRequest is the transient input to the planner's commit operation.
// It is never stored.
type BookingRequest struct {
	Slot        TimeSlot
	Name        string
	Email       string
	Message     string
	Recurrence  Recurrence
	SeriesCount int
}
