// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package database reads the service's input files through DuckDB.

DuckDB is used as a file reader rather than a store: its table functions
read_parquet, read_csv_auto and read_json_auto turn the catalog export and
the developer feature table into rows, which this package converts into
typed Go values. Nothing is written back.

	db, err := database.New(&cfg.Database)
	defer db.Close()

	records, err := db.LoadRecords(ctx, "data/steam_games.parquet")
	developers, err := db.LoadDevelopers(ctx, "data/developers.csv")

DB implements catalog.Loader so it can be passed to catalog.Load.
*/
package database
