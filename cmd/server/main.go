package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/handler"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/metrics"
	"github.com/MKhiriev/go-posts/internal/server"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/state"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const redacted = "[REDACTED]"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("posts-server").Fatal().Err(err).Msg("error getting configs")
	}

	opts := []logger.Option{logger.WithLevel(cfg.LogLevel())}
	if cfg.Log.Dir != "" {
		logFile, err := logger.OpenLogFile(cfg.Log.Dir, time.Now())
		if err != nil {
			logger.NewLogger("posts-server").Fatal().Err(err).Msg("error opening log file")
		}
		defer logFile.Close()
		opts = append(opts, logger.WithWriter(logFile))
	}
	log := logger.NewLogger("posts-server", opts...)

	log.Debug().Any("config", redactConfig(*cfg)).Msg("received configs")

	services, err := service.NewServices(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, services.TokenValidator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	validator, err := validators.NewSchemaValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating validator")
	}

	var m *metrics.Metrics
	if !cfg.Metrics.Disabled {
		m, err = newMetrics(storages)
		if err != nil {
			log.Fatal().Err(err).Msg("error registering metrics")
		}
	}

	handlers, err := handler.NewHandlers(state.NewStates(storages), services, validator, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newMetrics exports the size of both providers next to the HTTP metrics.
func newMetrics(storages *store.Storages) (*metrics.Metrics, error) {
	m := metrics.New()

	counters := map[string]any{
		"posts": storages.Posts,
		"users": storages.Users,
	}
	for resource, provider := range counters {
		counter, ok := provider.(store.Counter)
		if !ok {
			continue
		}
		if err := m.RegisterStoreSize(resource, counter); err != nil {
			return nil, fmt.Errorf("store size of %s: %w", resource, err)
		}
	}

	return m, nil
}

func redactConfig(cfg config.StructuredConfig) config.StructuredConfig {
	if cfg.App.TokenSignKey != "" {
		cfg.App.TokenSignKey = redacted
	}
	return cfg
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
