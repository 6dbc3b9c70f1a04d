package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/config"
	"course-admin-backend/pkg/logger"
)

// loadConfig loads .env + environment variables, dùng chung config với API
func loadConfig() *config.Config {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] Failed to load")
	}

	logger.Init(cfg.App.Environment, "course-admin-worker")
	if envErr != nil {
		log.Warn().Msg("[Config] No .env file found, using system environment variables")
	}

	log.Info().
		Str("redis", cfg.Redis.Host).
		Int("concurrency", cfg.Worker.Concurrency).
		Str("reconcile_cron", cfg.Worker.ReconcileCron).
		Msg("[Config] Loaded")

	return cfg
}
