// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/steamstats/docs" // Import generated swagger docs
	"github.com/tomtom215/steamstats/internal/api"
	"github.com/tomtom215/steamstats/internal/config"
	"github.com/tomtom215/steamstats/internal/logging"
	"github.com/tomtom215/steamstats/internal/supervisor"
	"github.com/tomtom215/steamstats/internal/supervisor/services"
)

const cacheReportInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config not yet available, default logger applies
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("loader", cfg.Dataset.Loader).
		Bool("prediction", cfg.Prediction.Enabled).
		Bool("cache", cfg.Cache.Enabled).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Steamstats")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg)
	if err != nil {
		logging.Err(err).Msg("Failed to load dataset")
		os.Exit(1)
	}
	defer a.Close()

	if err := run(ctx, cfg, a); err != nil {
		logging.Err(err).Msg("Server stopped with error")
		a.Close()
		os.Exit(1)
	}

	logging.Info().Msg("Application stopped gracefully")
}

// run serves HTTP under the supervisor tree until ctx is canceled.
func run(ctx context.Context, cfg *config.Config, a *app) error {
	handler := api.NewHandler(a.aggregator, a.predictor, a.db)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if len(a.caches) > 0 {
		tree.AddMaintenanceService(services.NewCacheReporterService(a.caches, cacheReportInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// the root supervisor sends exactly one value and never closes errCh
	var serveErr error
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		serveErr = err
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	return serveErr
}
