package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/handler"
	"github.com/MKhiriev/go-portfolio/internal/limiter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/metrics"
	"github.com/MKhiriev/go-portfolio/internal/server"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-portfolio-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-portfolio-server", cfg.App.LogLevel)
	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var loginLimiter service.LoginLimiter
	if cfg.Storage.Redis.Address != "" {
		redisClient, err := limiter.NewRedisClient(ctx, cfg.Storage.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()

		loginLimiter = limiter.NewLoginLimiter(redisClient, cfg.Limiter)
	} else {
		log.Warn().Msg("no redis address configured, login throttling disabled")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, loginLimiter, *cfg, log)

	handlers, err := handler.NewHandlers(services, metrics.New(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
