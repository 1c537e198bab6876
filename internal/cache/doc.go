// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package cache provides a thread-safe, typed in-memory cache with TTL expiry.

The catalog never changes while the server runs, so aggregation and
prediction results are pure functions of their inputs. The API layer caches
them to skip recomputation for repeated queries:

	results := cache.New[aggregate.Result](time.Hour)
	defer results.Close()

	key := cache.GenerateKey("genres", 2015)
	if r, ok := results.Get(key); ok {
	    return r, nil
	}

Expired entries are dropped lazily on Get and by a background sweep that
stops when Close is called.
*/
package cache
