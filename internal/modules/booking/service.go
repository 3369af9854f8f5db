package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/pkg/timeutil"
	"github.com/AgileExecutives/ae-scheduler/internal/scheduling"
)

type Service struct {
	planner Scheduler
	configs ConfigSource
	appts   AppointmentLister
}

func NewService(planner Scheduler, configs ConfigSource, appts AppointmentLister) *Service {
	return &Service{planner: planner, configs: configs, appts: appts}
}

func (s *Service) GetDayAvailability(ctx context.Context, dateStr string) (domain.DayAvailability, error) {
	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		return domain.DayAvailability{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	cfg, err := s.configs.Current(ctx)
	if err != nil {
		return domain.DayAvailability{}, err
	}
	day, err := s.planner.DayAvailability(ctx, date, cfg)
	if err != nil {
		return domain.DayAvailability{}, mapErr(err)
	}
	return day, nil
}

func (s *Service) GetMonthData(ctx context.Context, year, month int) (domain.MonthData, error) {
	if year < 1 {
		return domain.MonthData{}, fmt.Errorf("%w: year %d", ErrValidation, year)
	}
	cfg, err := s.configs.Current(ctx)
	if err != nil {
		return domain.MonthData{}, err
	}
	data, err := s.planner.MonthData(ctx, year, month, cfg)
	if err != nil {
		return domain.MonthData{}, mapErr(err)
	}
	return data, nil
}

func (s *Service) GetSeriesAvailability(ctx context.Context, dateStr, startTime, endTime, recurrence string) (int, error) {
	if _, err := timeutil.ParseDate(dateStr); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	cfg, err := s.configs.Current(ctx)
	if err != nil {
		return 0, err
	}
	slot := domain.TimeSlot{
		ID:        scheduling.SlotID(dateStr, startTime),
		Date:      dateStr,
		StartTime: startTime,
		EndTime:   endTime,
	}
	n, err := s.planner.SeriesAvailability(ctx, slot, normalizeRecurrence(recurrence), cfg)
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) ([]domain.Appointment, error) {
	cfg, err := s.configs.Current(ctx)
	if err != nil {
		return nil, err
	}

	count := req.SeriesCount
	if count == 0 {
		count = 1
	}
	planReq := domain.BookingRequest{
		Slot: domain.TimeSlot{
			ID:        scheduling.SlotID(req.Date, req.StartTime),
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		},
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		Recurrence:  normalizeRecurrence(req.Recurrence),
		SeriesCount: count,
	}

	created, err := s.planner.CreateBooking(ctx, planReq, cfg)
	if err != nil {
		return nil, mapErr(err)
	}
	return created, nil
}

func (s *Service) CancelBooking(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty appointment id", ErrValidation)
	}
	if err := s.planner.CancelBooking(ctx, id); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Appointment, error) {
	return s.appts.ListActive(ctx)
}

func normalizeRecurrence(raw string) domain.Recurrence {
	if raw == "" {
		return domain.RecurrenceOnce
	}
	return domain.Recurrence(raw)
}

// mapErr translates core sentinels into the module's own; ConflictError
// passes through untouched so the handler can surface the failing date.
func mapErr(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrValidation),
		errors.Is(err, domain.ErrBadSlotDuration),
		errors.Is(err, domain.ErrBadMaxSeriesCount),
		errors.Is(err, timeutil.ErrInvalidClock):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	case errors.Is(err, scheduling.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}
