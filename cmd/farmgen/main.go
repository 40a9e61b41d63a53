package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/farm-data-engine/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/farm-data-engine/internal/adapter/kafka"
	"github.com/couchcryptid/farm-data-engine/internal/config"
	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/observability"
	"github.com/couchcryptid/farm-data-engine/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/robfig/cron/v3"
)

// alwaysReady serves readiness when the publisher is disabled.
type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	api := httpadapter.NewAPI(httpadapter.APIConfig{
		FarmName:  cfg.FarmName,
		MaxDays:   cfg.MaxDatasetDays,
		CacheSize: cfg.DatasetCacheSize,
	}, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var ready sharedobs.ReadinessChecker = alwaysReady{}
	var writer *kafkaadapter.Writer
	if cfg.PublishEnabled {
		schedule, err := cron.ParseStandard(cfg.PublishSchedule)
		if err != nil {
			logger.Error("invalid publish schedule", "error", err)
			os.Exit(1)
		}

		rng := domain.NewRandom(cfg.RandomSeed)
		if !cfg.RandomSeedSet {
			rng = domain.NewTimeSeededRandom()
		}
		source := pipeline.NewDatasetSource(domain.NewBuilder(rng, domain.UUIDIDs{}), cfg.FarmName)
		writer = kafkaadapter.NewWriter(cfg, logger)

		p := pipeline.New(source, writer, pipeline.Options{
			Schedule:  schedule,
			BatchSize: cfg.BatchSize,
			Logger:    logger,
			Metrics:   metrics,
		})
		ready = p

		// Start publisher.
		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaTopic, "schedule", cfg.PublishSchedule)
	} else {
		logger.Info("kafka publishing disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, api, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
