// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package config loads and validates the Steamstats configuration.

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/steamstats/config.yaml)
 3. Environment variables from an explicit mapping table

# Environment Variables

Dataset:
  - DATASET_PATH: catalog file, parquet, csv or json (default: data/steam_games.parquet)
  - DATASET_LOADER: duckdb or parquet (default: duckdb)

DuckDB:
  - DUCKDB_PATH: database path, ":memory:" for a transient database
  - DUCKDB_MAX_MEMORY: memory cap (default: 1GB)
  - DUCKDB_THREADS: worker threads, 0 uses NumCPU

Prediction:
  - PREDICTION_ENABLED: load the price model at startup (default: true)
  - MODEL_PATH: JSON model artifact
  - DEVELOPERS_PATH: developer feature table

HTTP server:
  - HTTP_HOST, HTTP_PORT, SERVER_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

Cache:
  - CACHE_ENABLED, CACHE_TTL

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Any failure in Validate is fatal at startup.
*/
package config
