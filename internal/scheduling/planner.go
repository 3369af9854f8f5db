package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/pkg/timeutil"
)

// Planner composes the calculator and the conflict resolver into day/month
// views, expands recurring booking requests, and is the sole writer of the
// appointment store.
type Planner struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewPlanner(store Store, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{store: store, logger: logger, now: time.Now}
}

// DayAvailability resolves every slot of one day against the appointment
// list. When minAdvanceHours is configured, slots starting before
// now+minAdvanceHours are reported unavailable.
func (p *Planner) DayAvailability(ctx context.Context, date time.Time, cfg domain.BookingConfig) (domain.DayAvailability, error) {
	appointments, err := p.store.Snapshot(ctx)
	if err != nil {
		return domain.DayAvailability{}, fmt.Errorf("snapshot: %w", err)
	}
	return p.resolveDay(date, cfg, appointments)
}

func (p *Planner) resolveDay(date time.Time, cfg domain.BookingConfig, appointments []domain.Appointment) (domain.DayAvailability, error) {
	slots, err := SlotsForDay(date, cfg)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	var cutoff time.Time
	if cfg.MinAdvanceHours > 0 {
		cutoff = p.now().UTC().Add(time.Duration(cfg.MinAdvanceHours) * time.Hour)
	}

	available := 0
	for i := range slots {
		booked, err := IsBooked(appointments, slots[i].Date, slots[i].StartTime, slots[i].EndTime)
		if err != nil {
			return domain.DayAvailability{}, err
		}
		ok := !booked
		if ok && !cutoff.IsZero() {
			start, err := timeutil.ParseClock(slots[i].StartTime)
			if err != nil {
				return domain.DayAvailability{}, err
			}
			if timeutil.At(date, start).Before(cutoff) {
				ok = false
			}
		}
		slots[i].IsAvailable = ok
		if ok {
			available++
		}
	}

	return domain.DayAvailability{
		Date:           timeutil.FormatDate(date),
		AvailableCount: available,
		TotalCount:     len(slots),
		Status:         dayStatus(available, len(slots)),
		Slots:          slots,
	}, nil
}

func dayStatus(available, total int) domain.DayStatus {
	switch {
	case total == 0 || available == 0:
		return domain.DayNone
	case available == total:
		return domain.DayAvailable
	default:
		return domain.DayPartial
	}
}

// MonthData resolves every bookable day of a month: days strictly before
// today and, when maxAdvanceDays is set, strictly beyond today+maxAdvanceDays
// are excluded. Days come back in ascending date order with no padding.
func (p *Planner) MonthData(ctx context.Context, year, month int, cfg domain.BookingConfig) (domain.MonthData, error) {
	if month < 1 || month > 12 {
		return domain.MonthData{}, fmt.Errorf("%w: month %d", ErrValidation, month)
	}

	appointments, err := p.store.Snapshot(ctx)
	if err != nil {
		return domain.MonthData{}, fmt.Errorf("snapshot: %w", err)
	}

	today := timeutil.DateOnly(p.now())
	var horizon time.Time
	if cfg.MaxAdvanceDays != nil {
		horizon = today.AddDate(0, 0, *cfg.MaxAdvanceDays)
	}

	days := []domain.DayAvailability{}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		if d.Before(today) {
			continue
		}
		if cfg.MaxAdvanceDays != nil && d.After(horizon) {
			continue
		}
		day, err := p.resolveDay(d, cfg, appointments)
		if err != nil {
			return domain.MonthData{}, err
		}
		days = append(days, day)
	}

	return domain.MonthData{Year: year, Month: month, Days: days}, nil
}

// SeriesAvailability counts how many occurrences of a recurring booking fit
// before the first conflict, the requested slot itself included. The series
// truncates at the first conflict; it never skips past one. Result is in
// [1, maxSeriesCount].
func (p *Planner) SeriesAvailability(ctx context.Context, slot domain.TimeSlot, recurrence domain.Recurrence, cfg domain.BookingConfig) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if !recurrence.Valid() {
		return 0, fmt.Errorf("%w: recurrence %q", ErrValidation, recurrence)
	}
	if recurrence == domain.RecurrenceOnce {
		return 1, nil
	}

	start, err := timeutil.ParseDate(slot.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	appointments, err := p.store.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("snapshot: %w", err)
	}

	step := recurrence.IntervalDays()
	count := 1 // the requested slot itself
	for i := 1; i < cfg.MaxSeriesCount; i++ {
		date := timeutil.FormatDate(start.AddDate(0, 0, i*step))
		booked, err := IsBooked(appointments, date, slot.StartTime, slot.EndTime)
		if err != nil {
			return 0, err
		}
		if booked {
			break
		}
		count++
	}
	return count, nil
}

// CreateBooking re-validates every occurrence of the request against the
// current appointment list and commits all of them, or none: the first
// still-booked occurrence aborts the whole request via ConflictError. On
// success one appointment per occurrence is appended, sharing a generated
// series id when there is more than one.
func (p *Planner) CreateBooking(ctx context.Context, req domain.BookingRequest, cfg domain.BookingConfig) ([]domain.Appointment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if !req.Recurrence.Valid() {
		return nil, fmt.Errorf("%w: recurrence %q", ErrValidation, req.Recurrence)
	}
	if req.SeriesCount < 1 || req.SeriesCount > cfg.MaxSeriesCount {
		return nil, fmt.Errorf("%w: series count %d out of [1,%d]", ErrValidation, req.SeriesCount, cfg.MaxSeriesCount)
	}
	if req.Recurrence == domain.RecurrenceOnce && req.SeriesCount != 1 {
		return nil, fmt.Errorf("%w: one-off booking cannot repeat", ErrValidation)
	}

	start, err := timeutil.ParseDate(req.Slot.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	appointments, err := p.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	// Guard against state changes between slot display and submission.
	step := req.Recurrence.IntervalDays()
	dates := make([]string, 0, req.SeriesCount)
	for i := 0; i < req.SeriesCount; i++ {
		date := timeutil.FormatDate(start.AddDate(0, 0, i*step))
		booked, err := IsBooked(appointments, date, req.Slot.StartTime, req.Slot.EndTime)
		if err != nil {
			return nil, err
		}
		if booked {
			return nil, &ConflictError{Date: date}
		}
		dates = append(dates, date)
	}

	var seriesID string
	if req.SeriesCount > 1 {
		seriesID = uuid.NewString()
	}
	createdAt := p.now().UTC()

	created := make([]domain.Appointment, 0, len(dates))
	for _, date := range dates {
		a := domain.Appointment{
			ID:          uuid.NewString(),
			Date:        date,
			StartTime:   req.Slot.StartTime,
			EndTime:     req.Slot.EndTime,
			ClientName:  req.Name,
			ClientEmail: req.Email,
			Message:     req.Message,
			IsSeries:    req.SeriesCount > 1,
			SeriesID:    seriesID,
			Status:      domain.AppointmentConfirmed,
			CreatedAt:   createdAt,
		}
		if a.IsSeries {
			a.Recurrence = req.Recurrence
		}
		created = append(created, a)
	}

	if err := p.store.Append(ctx, created); err != nil {
		return nil, fmt.Errorf("append: %w", err)
	}

	p.logger.Info("booking created",
		zap.String("client", req.Email),
		zap.String("first_date", dates[0]),
		zap.Int("occurrences", len(created)),
		zap.String("series_id", seriesID),
	)
	return created, nil
}

// CancelBooking soft-deletes one appointment; the slot becomes available to
// subsequent queries immediately.
func (p *Planner) CancelBooking(ctx context.Context, id string) error {
	found, err := p.store.Cancel(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	if !found {
		return ErrNotFound
	}
	p.logger.Info("booking cancelled", zap.String("appointment_id", id))
	return nil
}
