// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/steamstats/internal/aggregate"
	"github.com/tomtom215/steamstats/internal/cache"
	"github.com/tomtom215/steamstats/internal/catalog"
	"github.com/tomtom215/steamstats/internal/config"
	"github.com/tomtom215/steamstats/internal/database"
	"github.com/tomtom215/steamstats/internal/logging"
	"github.com/tomtom215/steamstats/internal/metrics"
	"github.com/tomtom215/steamstats/internal/predict"
	"github.com/tomtom215/steamstats/internal/supervisor/services"
)

// app holds the components built from configuration. predictor is nil when
// prediction is disabled.
type app struct {
	db         *database.DB
	dataset    *catalog.Dataset
	aggregator *aggregate.Aggregator
	predictor  *predict.Predictor
	caches     map[string]services.CacheStats

	closers []func()
}

// buildApp opens the database and loads every dataset file. The catalog,
// developer table and model artifact load concurrently.
func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	a := &app{db: db, caches: make(map[string]services.CacheStats)}
	a.closers = append(a.closers, func() { closeDB(db) })

	var (
		developers predict.DeveloperTable
		model      *predict.ArtifactModel
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds, err := catalog.Load(gctx, catalogLoader(cfg.Dataset.Loader, db), cfg.Dataset.Path)
		if err != nil {
			return err
		}
		a.dataset = ds
		return nil
	})
	if cfg.Prediction.Enabled {
		g.Go(func() error {
			var err error
			developers, err = db.LoadDevelopers(gctx, cfg.Prediction.DevelopersPath)
			return err
		})
		g.Go(func() error {
			var err error
			model, err = predict.LoadArtifact(cfg.Prediction.ModelPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		a.Close()
		return nil, err
	}

	minYear, maxYear := a.dataset.YearRange()
	metrics.SetCatalogInfo(a.dataset.Len(), minYear, maxYear, time.Since(start))
	logging.Info().
		Int("records", a.dataset.Len()).
		Int("min_year", minYear).
		Int("max_year", maxYear).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	var aggOpts []aggregate.Option
	var predOpts []predict.Option
	if cfg.Cache.Enabled {
		aggCache := cache.New[aggregate.Result](cfg.Cache.TTL)
		a.closers = append(a.closers, aggCache.Close)
		a.caches["aggregate"] = aggCache
		aggOpts = append(aggOpts, aggregate.WithCache(aggCache))

		if cfg.Prediction.Enabled {
			predCache := cache.New[predict.Prediction](cfg.Cache.TTL)
			a.closers = append(a.closers, predCache.Close)
			a.caches["prediction"] = predCache
			predOpts = append(predOpts, predict.WithCache(predCache))
		}
	}

	a.aggregator = aggregate.New(a.dataset, aggOpts...)

	if cfg.Prediction.Enabled {
		a.predictor, err = predict.NewFromArtifact(a.dataset, developers, model, predOpts...)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("initialize predictor: %w", err)
		}
		logging.Info().
			Int("developers", len(developers)).
			Int("genres", len(model.Genres())).
			Float64("rmse", model.RMSE()).
			Msg("Price predictor ready")
	} else {
		logging.Info().Msg("Price prediction disabled (PREDICTION_ENABLED=false)")
	}

	return a, nil
}

// catalogLoader picks the reader for the dataset file.
func catalogLoader(name string, db *database.DB) catalog.Loader {
	if name == config.LoaderParquet {
		return catalog.ParquetLoader{}
	}
	return db
}

// Close releases caches and the database in reverse order of creation.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func closeDB(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close database")
	}
}
