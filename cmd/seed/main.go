package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	config "github.com/anjiri1684/tutor_booking/configs"
	"github.com/anjiri1684/tutor_booking/database"
	"github.com/anjiri1684/tutor_booking/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	goalsPath := flag.String("goals", cfg.GoalsFile, "path to the goals JSON document")
	teachersPath := flag.String("teachers", cfg.TeachersFile, "path to the teachers JSON document")
	skipUnknown := flag.Bool("skip-unknown-goals", false, "drop teacher goals missing from the goals table instead of failing")
	flag.Parse()

	logger := logging.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	seeder := database.NewSeeder(db, database.SeedOptions{SkipUnknownGoals: *skipUnknown}, logger)
	report, err := seeder.Run(ctx, *goalsPath, *teachersPath)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Seeding finished",
		zap.Int("goals_inserted", report.GoalsInserted),
		zap.Bool("goals_skipped", report.GoalsSkipped),
		zap.Int("teachers_inserted", report.TeachersInserted),
		zap.Bool("teachers_skipped", report.TeachersSkipped))
}
