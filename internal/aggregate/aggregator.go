// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/steamstats/internal/cache"
	"github.com/tomtom215/steamstats/internal/catalog"
	"github.com/tomtom215/steamstats/internal/logging"
	"github.com/tomtom215/steamstats/internal/metrics"
)

// Aggregator runs strategies against one catalog.
type Aggregator struct {
	dataset *catalog.Dataset
	results *cache.Cache[Result]
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithCache caches successful results per strategy and year.
func WithCache(c *cache.Cache[Result]) Option {
	return func(a *Aggregator) {
		a.results = c
	}
}

// New creates an Aggregator over ds.
func New(ds *catalog.Dataset, opts ...Option) *Aggregator {
	a := &Aggregator{dataset: ds}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Dataset returns the catalog the aggregator reads.
func (a *Aggregator) Dataset() *catalog.Dataset {
	return a.dataset
}

// Run validates yearInput and applies s to that year's rows. Failures are
// *catalog.QueryError values; the year is checked before any row is read.
func (a *Aggregator) Run(ctx context.Context, s Strategy, yearInput string) (Result, error) {
	start := time.Now()
	result, err := a.run(s, yearInput)
	metrics.RecordAggregation(s.Name, catalog.KindName(err), time.Since(start))

	if err != nil {
		logging.Ctx(ctx).Debug().
			Str("strategy", s.Name).
			Str("year", yearInput).
			Str("outcome", catalog.KindName(err)).
			Msg("Aggregation rejected")
	}
	return result, err
}

func (a *Aggregator) run(s Strategy, yearInput string) (Result, error) {
	year, err := a.dataset.ParseYear(yearInput)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%d", s.Name, year)
	if a.results != nil {
		if r, ok := a.results.Get(key); ok {
			metrics.RecordCacheLookup("aggregate", true)
			return r, nil
		}
		metrics.RecordCacheLookup("aggregate", false)
	}

	result, ok := s.Compute(year, a.dataset.RowsForYear(year))
	if !ok {
		return nil, catalog.NewQueryError(catalog.ErrNoData, s.Empty, year)
	}

	if a.results != nil {
		a.results.Set(key, result)
	}
	return result, nil
}
