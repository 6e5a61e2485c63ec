package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/handler"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/server"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/workers"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/jonboulle/clockwork"
	"google.golang.org/grpc/health"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("notes-sync-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("notes-sync-server",
		logger.WithLevel(cfg.Log.Level),
		logger.WithRotatingFile(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays),
	)
	log.Info().Object("build", buildInfo).Msg("starting sync server")
	log.Debug().Any("server", cfg.Server).Any("sync", cfg.Sync).Msg("received configs")

	// the build version unless configured
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, cfg.Sync.PageSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	clock := clockwork.NewRealClock()
	services, err := service.NewServices(storages, *cfg, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	healthServer := health.NewServer()
	handlers, err := handler.NewHandlers(services, healthServer, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(services, storages, healthServer, cfg.Workers, clock, log)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
