// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package services

import (
	"context"
	"sort"
	"time"

	"github.com/tomtom215/steamstats/internal/logging"
	"github.com/tomtom215/steamstats/internal/metrics"
)

// CacheStats is satisfied by every *cache.Cache instantiation.
type CacheStats interface {
	Len() int
	HitRate() float64
}

// CacheReporterService publishes cache sizes and hit rates on an interval.
type CacheReporterService struct {
	caches   map[string]CacheStats
	interval time.Duration
}

// NewCacheReporterService reports the named caches every interval. A
// non-positive interval uses one minute.
func NewCacheReporterService(caches map[string]CacheStats, interval time.Duration) *CacheReporterService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheReporterService{caches: caches, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheReporterService) Serve(ctx context.Context) error {
	s.report()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *CacheReporterService) report() {
	names := make([]string, 0, len(s.caches))
	for name := range s.caches {
		names = append(names, name)
	}
	sort.Strings(names)

	log := logging.WithComponent("cache")
	for _, name := range names {
		c := s.caches[name]
		entries, hitRate := c.Len(), c.HitRate()
		metrics.SetCacheStats(name, entries, hitRate)
		log.Debug().
			Str("cache", name).
			Int("entries", entries).
			Float64("hit_rate", hitRate).
			Msg("Cache stats")
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheReporterService) String() string {
	return "cache-reporter"
}
