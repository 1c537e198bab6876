// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID request IDs, propagated into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - AccessLog: one structured log line per request, escalated when slow

All middleware has the func(http.Handler) http.Handler shape so it plugs
straight into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(500 * time.Millisecond))
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics labels requests with the matched chi route pattern
(e.g. "/genero/{year}") rather than the raw path, so year values never
become label values.
*/
package middleware
