package main

import (
	"fmt"
	"os"

	"fleet-telemetry-service/internal/config"
	"fleet-telemetry-service/internal/db"
	"fleet-telemetry-service/internal/logger"
	"fleet-telemetry-service/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := seed.Run(database); err != nil {
		appLogger.Fatal().Err(err).Msg("seeding failed")
	}

	appLogger.Info().Msg("telemetry data seeded")
}
