package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/scheduling"
)

// AppointmentRepository is the database-backed scheduling.Store. It keeps
// the same semantics as the in-memory store: Append is transactional and
// Cancel is a soft delete.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Date        string    `gorm:"column:date;index:idx_appointments_date"`
	StartTime   string    `gorm:"column:start_time"`
	EndTime     string    `gorm:"column:end_time"`
	ClientName  string    `gorm:"column:client_name"`
	ClientEmail string    `gorm:"column:client_email"`
	Message     *string   `gorm:"column:message"`
	IsSeries    bool      `gorm:"column:is_series"`
	SeriesID    *string   `gorm:"column:series_id;index:idx_appointments_series"`
	Recurrence  *string   `gorm:"column:recurrence"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) domain.Appointment {
	a := domain.Appointment{
		ID:          m.ID,
		Date:        m.Date,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		ClientName:  m.ClientName,
		ClientEmail: m.ClientEmail,
		IsSeries:    m.IsSeries,
		Status:      domain.AppointmentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
	if m.Message != nil {
		a.Message = *m.Message
	}
	if m.SeriesID != nil {
		a.SeriesID = *m.SeriesID
	}
	if m.Recurrence != nil {
		a.Recurrence = domain.Recurrence(*m.Recurrence)
	}
	return a
}

func toAppointmentModel(a domain.Appointment) appointmentModel {
	m := appointmentModel{
		ID:          a.ID,
		Date:        a.Date,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		ClientName:  a.ClientName,
		ClientEmail: a.ClientEmail,
		IsSeries:    a.IsSeries,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
	if a.Message != "" {
		v := a.Message
		m.Message = &v
	}
	if a.SeriesID != "" {
		v := a.SeriesID
		m.SeriesID = &v
	}
	if a.Recurrence != "" {
		v := string(a.Recurrence)
		m.Recurrence = &v
	}
	return m
}

func (r *AppointmentRepository) Snapshot(ctx context.Context) ([]domain.Appointment, error) {
	var rows []appointmentModel
	tx := r.db.WithContext(ctx).Order("date, start_time").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainAppointment(m))
	}
	return out, nil
}

func (r *AppointmentRepository) Append(ctx context.Context, appointments []domain.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}
	models := make([]appointmentModel, 0, len(appointments))
	for _, a := range appointments {
		models = append(models, toAppointmentModel(a))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
	if err != nil {
		// The idx_no_double_booking partial index backs up the planner's
		// pre-commit check at the database level.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return &scheduling.ConflictError{Date: appointments[0].Date}
		}
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return &scheduling.ConflictError{Date: appointments[0].Date}
		}
		return err
	}
	return nil
}

func (r *AppointmentRepository) Cancel(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ? AND status <> ?", id, string(domain.AppointmentCancelled)).
		Update("status", string(domain.AppointmentCancelled))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ListActive returns every non-cancelled appointment, oldest date first.
func (r *AppointmentRepository) ListActive(ctx context.Context) ([]domain.Appointment, error) {
	var rows []appointmentModel
	tx := r.db.WithContext(ctx).
		Where("status <> ?", string(domain.AppointmentCancelled)).
		Order("date, start_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainAppointment(m))
	}
	return out, nil
}
