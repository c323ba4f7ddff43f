package main

import (
	"fmt"
	"os"

	"fleet-telemetry-service/internal/auth"
	"fleet-telemetry-service/internal/cache"
	"fleet-telemetry-service/internal/config"
	"fleet-telemetry-service/internal/db"
	httphandler "fleet-telemetry-service/internal/http"
	"fleet-telemetry-service/internal/http/middleware"
	"fleet-telemetry-service/internal/logger"
	"fleet-telemetry-service/internal/repository"
	"fleet-telemetry-service/internal/service"
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

	blacklist, err := cache.NewTokenBlacklist(cfg.Redis)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer blacklist.Close()

	userRepo := repository.NewUserRepository(database)
	dashboardRepo := repository.NewDashboardRepository(database)
	analysisRepo := repository.NewAnalysisRepository(database)
	trailRepo := repository.NewTrailRepository(database)
	reportRepo := repository.NewReportRepository(database)

	tokenManager := auth.NewManager(cfg.Auth)
	authService := service.NewAuthService(userRepo, tokenManager, blacklist)
	telemetryService := service.NewTelemetryService(dashboardRepo, analysisRepo, trailRepo, reportRepo)

	handler := httphandler.NewHandler(authService, telemetryService, cfg.Pagination.PageSize, appLogger)
	authMiddleware := middleware.Auth(tokenManager)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleet telemetry service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
