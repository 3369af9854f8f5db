package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/pkg/timeutil"
)

// Service manages the single booking configuration that drives slot
// generation. It also feeds the booking module through Current.
type Service struct {
	repo   ConfigRepository
	logger *zap.Logger
}

func NewService(repo ConfigRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Get(ctx context.Context) (domain.BookingConfig, error) {
	return s.repo.Get(ctx)
}

// Current satisfies the booking module's config source.
func (s *Service) Current(ctx context.Context) (domain.BookingConfig, error) {
	return s.repo.Get(ctx)
}

// Update replaces the stored configuration after validating the knobs and
// every range of the weekly template. Existing appointments are untouched:
// availability is always recomputed from the config in force at read time.
func (s *Service) Update(ctx context.Context, cfg domain.BookingConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if cfg.BufferTime < 0 {
		return fmt.Errorf("%w: buffer time must not be negative", ErrValidation)
	}
	if cfg.MinAdvanceHours < 0 {
		return fmt.Errorf("%w: min advance hours must not be negative", ErrValidation)
	}
	if cfg.MaxAdvanceDays != nil && *cfg.MaxAdvanceDays < 0 {
		return fmt.Errorf("%w: max advance days must not be negative", ErrValidation)
	}
	if err := validateTemplate(cfg.WeeklyAvailability); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, cfg); err != nil {
		return err
	}
	s.logger.Info("schedule updated",
		zap.Int("slot_duration", cfg.SlotDuration),
		zap.Int("buffer_time", cfg.BufferTime),
		zap.Int("max_series_count", cfg.MaxSeriesCount))
	return nil
}

func validateTemplate(template domain.WeeklyAvailability) error {
	for day, ranges := range template {
		switch day {
		case domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
			domain.Friday, domain.Saturday, domain.Sunday:
		default:
			return fmt.Errorf("%w: unknown weekday %q", ErrValidation, day)
		}
		for _, r := range ranges {
			start, err := timeutil.ParseClock(r.Start)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrValidation, day, err)
			}
			end, err := timeutil.ParseClock(r.End)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrValidation, day, err)
			}
			if start >= end {
				return fmt.Errorf("%w: %s: range %s-%s is empty", ErrValidation, day, r.Start, r.End)
			}
		}
	}
	return nil
}
