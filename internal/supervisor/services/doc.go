// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully
//     when its context is canceled.
//   - CacheReporterService: periodically publishes result cache sizes and
//     hit rates as Prometheus gauges.
//
// Every service implements fmt.Stringer so supervisor events name it.
package services
