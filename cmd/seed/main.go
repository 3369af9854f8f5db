// Seeds a local database with a demo schedule, clients and a few
// appointments for frontend development.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AgileExecutives/ae-scheduler/internal/config"
	"github.com/AgileExecutives/ae-scheduler/internal/database"
	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	ctx := context.Background()

	scheduleRepo := repository.NewScheduleRepository(db)
	bookingCfg := domain.DefaultBookingConfig()
	bookingCfg.SlotDuration = 50
	bookingCfg.BufferTime = 10
	bookingCfg.MinAdvanceHours = 24
	if err := scheduleRepo.Save(ctx, bookingCfg); err != nil {
		logger.Fatal("seed schedule failed", zap.Error(err))
	}

	clientRepo := repository.NewClientRepository(db)
	clients := []domain.Client{
		{Name: "Dana Weber", Email: "dana.weber@example.com", Phone: "+49 151 1234567"},
		{Name: "Jonas Richter", Email: "jonas.richter@example.com"},
		{Name: "Mia Hoffmann", Email: "mia.hoffmann@example.com", Notes: "prefers mornings"},
	}
	for i := range clients {
		if err := clientRepo.Create(ctx, &clients[i]); err != nil {
			logger.Warn("seed client skipped", zap.String("email", clients[i].Email), zap.Error(err))
		}
	}

	appointmentRepo := repository.NewAppointmentRepository(db)
	nextMonday := upcomingMonday(time.Now().UTC())
	appointments := []domain.Appointment{
		{
			ID:          uuid.NewString(),
			Date:        nextMonday.Format("2006-01-02"),
			StartTime:   "10:00",
			EndTime:     "10:50",
			ClientName:  clients[0].Name,
			ClientEmail: clients[0].Email,
			Status:      domain.AppointmentConfirmed,
			CreatedAt:   time.Now().UTC(),
		},
		{
			ID:          uuid.NewString(),
			Date:        nextMonday.AddDate(0, 0, 2).Format("2006-01-02"),
			StartTime:   "14:00",
			EndTime:     "14:50",
			ClientName:  clients[1].Name,
			ClientEmail: clients[1].Email,
			Status:      domain.AppointmentConfirmed,
			CreatedAt:   time.Now().UTC(),
		},
	}
	if err := appointmentRepo.Append(ctx, appointments); err != nil {
		logger.Warn("seed appointments skipped", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.String("database", cfg.DatabaseURL),
		zap.Int("clients", len(clients)),
		zap.Int("appointments", len(appointments)))
}

func upcomingMonday(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
