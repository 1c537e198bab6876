// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package api

import (
	"net/http"

	"github.com/tomtom215/steamstats/internal/predict"
)

// Prediction handles GET /prediccion?release_date=YYYY-MM-DD&developer=...&genre=a,b.
//
// @Summary Predict a release price
// @Description Predicts a price from a release date, a developer and a comma separated genre list.
// @Description Invalid input is returned as {"error": "..."} with status 200.
// @Tags Prediction
// @Produce json
// @Param release_date query string true "Release date, YYYY-MM-DD"
// @Param developer query string true "Developer name, exact match"
// @Param genre query string true "Comma separated genres, e.g. Action,Indie"
// @Success 200 {object} predict.Prediction "Predicted price and model RMSE, or error payload"
// @Failure 503 {object} ErrorResponse "Prediction disabled"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /prediccion [get]
func (h *Handler) Prediction(w http.ResponseWriter, r *http.Request) {
	if h.predictor == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: ErrPredictionUnavailable.Error()}, cacheControlNoStore)
		return
	}

	q := r.URL.Query()
	req := predict.Request{
		ReleaseDate: q.Get("release_date"),
		Developer:   q.Get("developer"),
		Genre:       q.Get("genre"),
	}

	result, err := h.predictor.Predict(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
