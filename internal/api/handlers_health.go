// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/steamstats/internal/logging"
)

// healthPingTimeout bounds the readiness database check.
const healthPingTimeout = 2 * time.Second

// Database states reported by the readiness check.
const (
	dbStateOK          = "ok"
	dbStateUnavailable = "unavailable"
	dbStateDisabled    = "disabled"
)

// LivenessStatus is the body of the liveness check.
type LivenessStatus struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime_seconds"`
}

// ReadinessStatus is the body of the readiness check.
type ReadinessStatus struct {
	Status     string  `json:"status"`
	Records    int     `json:"records"`
	MinYear    int     `json:"min_year"`
	MaxYear    int     `json:"max_year"`
	Database   string  `json:"database"`
	Prediction bool    `json:"prediction"`
	Uptime     float64 `json:"uptime_seconds"`
}

// HealthLive returns 200 while the process is serving, regardless of
// dependencies.
//
// @Summary Liveness check
// @Description Returns 200 while the process is alive, regardless of dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} LivenessStatus
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LivenessStatus{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	}, cacheControlNoStore)
}

// HealthReady returns 200 when the catalog is loaded and the database, if
// any, answers a ping. Otherwise it returns 503.
//
// @Summary Readiness check
// @Description Reports the loaded catalog, its year range, the database state and prediction availability.
// @Tags Health
// @Produce json
// @Success 200 {object} ReadinessStatus "Service is ready"
// @Failure 503 {object} ReadinessStatus "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := ReadinessStatus{
		Status:     "ready",
		Database:   dbStateDisabled,
		Prediction: h.predictor != nil,
		Uptime:     time.Since(h.startTime).Seconds(),
	}

	if h.aggregator == nil {
		status.Status = "not_ready"
	} else {
		ds := h.aggregator.Dataset()
		status.Records = ds.Len()
		status.MinYear, status.MaxYear = ds.YearRange()
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check: database ping failed")
			status.Database = dbStateUnavailable
			status.Status = "not_ready"
		} else {
			status.Database = dbStateOK
		}
	}

	code := http.StatusOK
	if status.Status != "ready" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status, cacheControlNoStore)
}
