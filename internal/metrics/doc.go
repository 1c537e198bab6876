// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package metrics defines the Prometheus collectors exported on /metrics.

Collectors are registered with the default registry through promauto at
package initialization. Callers use the Record* helpers rather than the
collectors directly:

	start := time.Now()
	result, err := agg.Run(ctx, aggregate.Genres, "2015")
	metrics.RecordAggregation("genres", catalog.KindName(err), time.Since(start))

# Metric Families

  - api_*: request counts, latency, in-flight requests, rate limit rejections
  - duckdb_*: load query latency and errors
  - catalog_*: dataset size, year range and load time
  - aggregation_*: runs per strategy and outcome, latency
  - prediction_*: price predictions per outcome
  - cache_*: result cache lookups
*/
package metrics
