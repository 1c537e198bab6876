// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package main is the entry point for the Steamstats server.

Steamstats serves read-only, year-scoped analytics over a game catalog
snapshot and a price prediction endpoint backed by a pre-trained
regression artifact.

# Application Architecture

	RootSupervisor ("steamstats")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache reporter (result cache gauges)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Database: in-process DuckDB used to read the dataset files
 4. Catalog, developer table and model artifact, loaded concurrently
 5. Aggregator and predictor with their result caches
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Settings come from defaults, then config.yaml, then environment variables:

	DATASET_PATH=data/steam_games.parquet
	DATASET_LOADER=duckdb          # or parquet
	PREDICTION_ENABLED=true
	PREDICTION_MODEL_PATH=data/price_model.json
	PREDICTION_DEVELOPERS_PATH=data/developers.csv
	SERVER_PORT=8000
	LOGGING_LEVEL=info

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and waits for in-flight requests up to the shutdown timeout.
*/
package main
