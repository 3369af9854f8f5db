package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AgileExecutives/ae-scheduler/internal/config"
	"github.com/AgileExecutives/ae-scheduler/internal/database"
	"github.com/AgileExecutives/ae-scheduler/internal/middleware"
	"github.com/AgileExecutives/ae-scheduler/internal/modules/booking"
	"github.com/AgileExecutives/ae-scheduler/internal/modules/client"
	"github.com/AgileExecutives/ae-scheduler/internal/modules/schedule"
	"github.com/AgileExecutives/ae-scheduler/internal/pkg/response"
	"github.com/AgileExecutives/ae-scheduler/internal/repository"
	"github.com/AgileExecutives/ae-scheduler/internal/scheduling"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := newLogger(cfg)
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

	appointmentRepo := repository.NewAppointmentRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	clientRepo := repository.NewClientRepository(db)

	planner := scheduling.NewPlanner(appointmentRepo, logger)

	scheduleService := schedule.NewService(scheduleRepo, logger)
	scheduleHandler := schedule.NewHandler(scheduleService)

	bookingService := booking.NewService(planner, scheduleService, appointmentRepo)
	bookingHandler := booking.NewHandler(bookingService)

	clientService := client.NewService(clientRepo, logger)
	clientHandler := client.NewHandler(clientService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		bookingHandler.RegisterRoutes(v1)
		scheduleHandler.RegisterRoutes(v1)
		clientHandler.RegisterRoutes(v1)
	}

	logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.AppEnv))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}
