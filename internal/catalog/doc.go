// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package catalog holds the game catalog dataset and the rules for addressing
it by release year.

A Dataset is built once from loaded records and never changes afterwards.
It precomputes the release year range and a per-year index, so RowsForYear
is a map lookup followed by a copy:

	ds, err := catalog.New(records)
	minYear, maxYear := ds.YearRange()
	rows := ds.RowsForYear(2015)

Year inputs arriving as text are validated with ParseYear, which reports
failures as *QueryError values whose Kind is one of the sentinel errors in
this package. Handlers render the message of a QueryError to the client.

Records come from a Loader. ParquetLoader reads parquet files natively with
parquet-go; the database package provides a DuckDB-backed loader that also
reads CSV and JSON.
*/
package catalog
