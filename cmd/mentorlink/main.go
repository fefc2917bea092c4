package main

import (
	"github.com/joho/godotenv"
	"github.com/mentorlink-dev/mentorlink/db"
	"github.com/mentorlink-dev/mentorlink/internal/auth"
	"github.com/mentorlink-dev/mentorlink/internal/config"
	"github.com/mentorlink-dev/mentorlink/internal/handlers"
	"github.com/mentorlink-dev/mentorlink/internal/router"
	"github.com/mentorlink-dev/mentorlink/internal/scheduler"
	"github.com/mentorlink-dev/mentorlink/internal/services"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("No .env file loaded: %v", err)
	}

	cfg, err := config.New()

	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)

	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logger.SetLevel(logLevel)

	// Handlers log through the package-level logger.
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logLevel)

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		logger.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	handlers.Domain = cfg.Domain

	if cfg.MailEnabled() {
		handlers.Mailer = services.NewMailer(cfg, logger)
	} else {
		logger.Warn("SMTP not configured, verification emails disabled")
	}

	jobs := scheduler.New(db.DB, logger, cfg.PurgeAfter)

	if err := jobs.Start(cfg.PurgeSchedule); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer jobs.Stop()

	r := router.NewRouter()

	logger.Infof("Listening on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
