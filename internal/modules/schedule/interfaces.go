package schedule

import (
	"context"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

// ConfigRepository persists the single booking configuration row.
type ConfigRepository interface {
	Get(ctx context.Context) (domain.BookingConfig, error)
	Save(ctx context.Context, cfg domain.BookingConfig) error
}
