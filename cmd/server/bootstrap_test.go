// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/steamstats/internal/aggregate"
	"github.com/tomtom215/steamstats/internal/catalog"
	"github.com/tomtom215/steamstats/internal/config"
	"github.com/tomtom215/steamstats/internal/predict"
)

const (
	gamesCSV = `app_name,release_date,genres,specs,sentiment,metascore,early_access
Portal 2,2011-04-18,"['Action', 'Adventure']","['Single-player']",Overwhelmingly Positive,95,False
Terraria,2011-05-16,"['Action', 'Indie']","['Multi-player']",Overwhelmingly Positive,83,False
`
	developersCSV = `developer,developer_total,avg_dev
Valve,28,9.99
Re-Logic,1,9.99
`
	modelJSON = `{
  "genres": ["Action", "Indie"],
  "scaler": {"mean": [0, 0, 0, 0, 0], "scale": [1, 1, 1, 1, 1]},
  "polynomial": {"degree": 1, "include_bias": false},
  "coefficients": [0, 0, 0, 2, 3],
  "intercept": 1,
  "rmse": 4.5
}`
)

func testConfig(t *testing.T, prediction, cacheEnabled bool) *config.Config {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	return &config.Config{
		Dataset: config.DatasetConfig{
			Path:   write("games.csv", gamesCSV),
			Loader: config.LoaderDuckDB,
		},
		Database: config.DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "256MB",
			Threads:   1,
		},
		Prediction: config.PredictionConfig{
			Enabled:        prediction,
			ModelPath:      write("price_model.json", modelJSON),
			DevelopersPath: write("developers.csv", developersCSV),
		},
		Cache: config.CacheConfig{
			Enabled: cacheEnabled,
			TTL:     time.Minute,
		},
	}
}

func TestBuildApp(t *testing.T) {
	cfg := testConfig(t, true, true)

	a, err := buildApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildApp() error = %v", err)
	}
	defer a.Close()

	if a.dataset.Len() != 2 {
		t.Errorf("dataset has %d records, want 2", a.dataset.Len())
	}
	if _, ok := a.caches["aggregate"]; !ok {
		t.Error("aggregate cache not registered")
	}
	if _, ok := a.caches["prediction"]; !ok {
		t.Error("prediction cache not registered")
	}

	got, err := a.aggregator.Run(context.Background(), aggregate.Genres, "2011")
	if err != nil {
		t.Fatalf("Run(genres, 2011) error = %v", err)
	}
	if got == nil {
		t.Fatal("Run(genres, 2011) returned nil result")
	}

	if a.predictor == nil {
		t.Fatal("predictor not built")
	}
	pred, err := a.predictor.Predict(context.Background(), predict.Request{
		ReleaseDate: "2011-01-01",
		Developer:   "Valve",
		Genre:       "Action,Indie",
	})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	// 2*1 + 3*1 + 1
	if pred.Price != "6.00" {
		t.Errorf("Price = %q, want 6.00", pred.Price)
	}
}

func TestBuildApp_PredictionDisabled(t *testing.T) {
	cfg := testConfig(t, false, false)
	cfg.Prediction.ModelPath = filepath.Join(t.TempDir(), "missing.json")

	a, err := buildApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildApp() error = %v", err)
	}
	defer a.Close()

	if a.predictor != nil {
		t.Error("predictor built while prediction is disabled")
	}
	if len(a.caches) != 0 {
		t.Errorf("caches = %v, want none", a.caches)
	}
}

func TestBuildApp_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{"missing catalog", func(cfg *config.Config) {
			cfg.Dataset.Path = filepath.Join(filepath.Dir(cfg.Dataset.Path), "missing.csv")
		}},
		{"missing model", func(cfg *config.Config) {
			cfg.Prediction.ModelPath = filepath.Join(filepath.Dir(cfg.Dataset.Path), "missing.json")
		}},
		{"missing developers", func(cfg *config.Config) {
			cfg.Prediction.DevelopersPath = filepath.Join(filepath.Dir(cfg.Dataset.Path), "missing.csv")
		}},
		{"parquet loader on csv", func(cfg *config.Config) {
			cfg.Dataset.Loader = config.LoaderParquet
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, true, true)
			tt.mutate(cfg)

			if _, err := buildApp(context.Background(), cfg); err == nil {
				t.Error("buildApp() error = nil, want error")
			}
		})
	}
}

func TestCatalogLoader(t *testing.T) {
	if _, ok := catalogLoader(config.LoaderParquet, nil).(catalog.ParquetLoader); !ok {
		t.Error("parquet loader not selected")
	}
	if _, ok := catalogLoader(config.LoaderDuckDB, nil).(catalog.ParquetLoader); ok {
		t.Error("duckdb loader should not be the parquet loader")
	}
}
