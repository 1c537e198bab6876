// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/steamstats/internal/aggregate"
	"github.com/tomtom215/steamstats/internal/predict"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, catalog queries
//   - handlers_predict.go: price prediction
//   - handlers_health.go: liveness and readiness checks
type Handler struct {
	aggregator *aggregate.Aggregator
	predictor  *predict.Predictor
	db         Pinger
	startTime  time.Time
}

// NewHandler creates the API handler. predictor and db may be nil: without a
// predictor /prediccion answers ErrPredictionUnavailable, and without a db
// the readiness check reports the database as disabled.
func NewHandler(agg *aggregate.Aggregator, predictor *predict.Predictor, db Pinger) *Handler {
	return &Handler{
		aggregator: agg,
		predictor:  predictor,
		db:         db,
		startTime:  time.Now(),
	}
}

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// Welcome handles GET /.
//
// @Summary Welcome message
// @Description Returns a static greeting. Useful as a smoke test.
// @Tags Catalog
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router / [get]
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, WelcomeResponse{Message: "Welcome!"})
}

// Aggregate returns the handler for one year-scoped strategy. The {year}
// path segment is passed through verbatim so error messages echo it.
//
// @Summary Year-scoped catalog aggregation
// @Description genero: five most frequent genres. juegos: release names. specs: five most frequent feature tags.
// @Description earlyaccess: early access release count. sentiment: sentiment label counts in first-seen order.
// @Description metascore: five best metascores by title.
// @Description Domain errors (bad year, out of range, no data) are returned as {"error": "..."} with status 200.
// @Tags Catalog
// @Produce json
// @Param year path string true "Release year, e.g. 2015"
// @Success 200 {object} map[string]interface{} "Ordered result object or error payload"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /genero/{year} [get]
// @Router /juegos/{year} [get]
// @Router /specs/{year} [get]
// @Router /earlyaccess/{year} [get]
// @Router /sentiment/{year} [get]
// @Router /metascore/{year} [get]
func (h *Handler) Aggregate(s aggregate.Strategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.aggregator.Run(r.Context(), s, yearParam(r))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// yearParam returns the decoded {year} path segment.
func yearParam(r *http.Request) string {
	raw := chi.URLParam(r, "year")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
