// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

// Command catalogctl runs the catalog aggregations offline against a
// dataset file, without starting the HTTP server.
//
//	catalogctl genres 2015 --dataset data/steam_games.parquet
//	catalogctl metascore 2012 --format table
//	catalogctl range --loader parquet
//
// Domain failures such as an out-of-range year are printed as the same
// {"error": ...} object the API returns, with a non-zero exit status.
package main
