// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package logging wraps zerolog as the single logger for Steamstats.

The package keeps one global zerolog.Logger configured from the
logging section of the service configuration:

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().Int("rows", n).Msg("Catalog loaded")

Request handlers log through the request context so every line carries
the request and correlation identifiers set by the HTTP middleware:

	logging.Ctx(r.Context()).Warn().Str("year", raw).Msg("Year rejected")

Libraries that expect a *slog.Logger (the suture supervisor hook) get
one backed by the same zerolog logger through NewSlogLogger.

Always terminate an event with Msg or Send, otherwise nothing is written.
*/
package logging
