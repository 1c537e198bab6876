// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package aggregate runs the year-scoped queries behind the catalog endpoints.

Every query goes through the same pipeline:

 1. validate the year text against the catalog (catalog.Dataset.ParseYear)
 2. select the rows released in that year
 3. run a Strategy over those rows
 4. report an empty outcome as a catalog.ErrNoData QueryError

Strategies differ only in what they extract and how they shape the result:

	Genres       label counts, top 5
	Games        {"<year>": [names in release order]}
	Specs        label counts, top 5
	EarlyAccess  {"<year>": number of early access releases}
	Sentiment    label counts in first-seen order, review-count labels dropped
	Metascore    name to metascore, top 5 by score

Results are Ordered values whose JSON encoding keeps entry order. Ranking
uses a stable sort, so equal counts stay in the order they were first seen.
*/
package aggregate
