package main

import (
	"context"
	"time"

	"github.com/stemsi/folio-backend/internal/config"
	"github.com/stemsi/folio-backend/internal/database"
	"github.com/stemsi/folio-backend/internal/logger"
	"github.com/stemsi/folio-backend/internal/seed"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	projects, courses, err := seed.Postgres(ctx, pool, time.Now().UTC())
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().
		Int64("projects", projects).
		Int64("courses", courses).
		Msg("Sample content seeded")
}
