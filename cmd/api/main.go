package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/tutor_booking/configs"
	"github.com/anjiri1684/tutor_booking/database"
	"github.com/anjiri1684/tutor_booking/handlers"
	"github.com/anjiri1684/tutor_booking/jobs"
	"github.com/anjiri1684/tutor_booking/logging"
	"github.com/anjiri1684/tutor_booking/notifications"
	"github.com/anjiri1684/tutor_booking/repository"
	"github.com/anjiri1684/tutor_booking/routes"
	"github.com/anjiri1684/tutor_booking/services"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	if cfg.SeedOnStart {
		report, err := database.NewSeeder(db, database.SeedOptions{}, logger).
			Run(ctx, cfg.GoalsFile, cfg.TeachersFile)
		if err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
		logger.Info("Seeding finished",
			zap.Int("goals", report.GoalsInserted),
			zap.Int("teachers", report.TeachersInserted))
	}

	notifier := notifications.New(notifications.BrevoConfig{
		APIKey:        cfg.BrevoAPIKey,
		SenderEmail:   cfg.EmailSender,
		SenderName:    cfg.EmailSenderName,
		OperatorEmail: cfg.OperatorEmail,
	}, logger)

	catalog := services.NewCatalogService(
		repository.NewGormTeacherRepository(db),
		repository.NewGormGoalRepository(db),
		logger,
	)
	bookings := services.NewBookingService(db, notifier, logger)
	requests := services.NewRequestService(db, notifier, logger)

	app := routes.NewApp(logger, routes.Handlers{
		Catalog: handlers.NewCatalogHandler(catalog, cfg.HomeSampleSize),
		Booking: handlers.NewBookingHandler(bookings),
		Request: handlers.NewRequestHandler(catalog, requests),
	})

	c := cron.New()
	scheduled, err := jobs.Schedule(c, cfg.DigestCron, jobs.NewDigest(db, notifier, logger))
	if err != nil {
		logger.Fatal("Invalid DIGEST_CRON", zap.String("spec", cfg.DigestCron), zap.Error(err))
	}
	if scheduled {
		c.Start()
		logger.Info("Digest job scheduled", zap.String("spec", cfg.DigestCron))
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("Server stopped with error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	<-c.Stop().Done()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bookings.Wait(drainCtx); err != nil {
		logger.Warn("Booking notifications still pending at shutdown", zap.Error(err))
	}
	if err := requests.Wait(drainCtx); err != nil {
		logger.Warn("Request notifications still pending at shutdown", zap.Error(err))
	}

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}
	logger.Info("Server stopped")
}
