package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

// ScheduleRepository persists the booking configuration (weekly template
// plus knobs) as a single JSON document, one row per deployment.
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

type scheduleModel struct {
	ID        int64           `gorm:"column:id;primaryKey"`
	Config    json.RawMessage `gorm:"column:config;type:text"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (scheduleModel) TableName() string { return "schedule_configs" }

const scheduleRowID = 1

// Get returns the stored configuration, or the default one when nothing
// has been saved yet.
func (r *ScheduleRepository) Get(ctx context.Context) (domain.BookingConfig, error) {
	var m scheduleModel
	tx := r.db.WithContext(ctx).First(&m, scheduleRowID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return domain.DefaultBookingConfig(), nil
		}
		return domain.BookingConfig{}, tx.Error
	}

	var cfg domain.BookingConfig
	if err := json.Unmarshal(m.Config, &cfg); err != nil {
		return domain.BookingConfig{}, err
	}
	return cfg, nil
}

// Save replaces the configuration document.
func (r *ScheduleRepository) Save(ctx context.Context, cfg domain.BookingConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	m := scheduleModel{ID: scheduleRowID, Config: raw, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"config", "updated_at"}),
		}).
		Create(&m).Error
}
