// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package api

import "errors"

var (
	// ErrPredictionUnavailable is returned when the service runs without a model.
	ErrPredictionUnavailable = errors.New("price prediction is not available")

	errInternal     = errors.New("internal server error")
	errRateLimited  = errors.New("rate limit exceeded, try again later")
	errRouteMissing = errors.New("route not found")
)
