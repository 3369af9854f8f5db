package booking

import (
	"context"
	"time"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

// Scheduler is the planning core the module exposes over HTTP.
type Scheduler interface {
	DayAvailability(ctx context.Context, date time.Time, cfg domain.BookingConfig) (domain.DayAvailability, error)
	MonthData(ctx context.Context, year, month int, cfg domain.BookingConfig) (domain.MonthData, error)
	SeriesAvailability(ctx context.Context, slot domain.TimeSlot, recurrence domain.Recurrence, cfg domain.BookingConfig) (int, error)
	CreateBooking(ctx context.Context, req domain.BookingRequest, cfg domain.BookingConfig) ([]domain.Appointment, error)
	CancelBooking(ctx context.Context, id string) error
}

// ConfigSource supplies the current booking configuration (weekly template
// plus knobs) per request.
type ConfigSource interface {
	Current(ctx context.Context) (domain.BookingConfig, error)
}

// AppointmentLister reads the non-cancelled appointment list.
type AppointmentLister interface {
	ListActive(ctx context.Context) ([]domain.Appointment, error)
}
