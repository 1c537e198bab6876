// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package api

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamstats/internal/catalog"
	"github.com/tomtom215/steamstats/internal/logging"
)

// Cache-Control values. Query results derive from an immutable catalog.
const (
	cacheControlPublic  = "public, max-age=60"
	cacheControlNoStore = "no-store"
)

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a cacheable JSON response with an ETag.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	writeJSON(w, status, body, cacheControlPublic)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}, cacheControl string) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a quoted FNV-1a ETag for data.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondError renders err. Query errors become a 200 error payload carrying
// their message; anything else is logged and answered with a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if qe, ok := catalog.AsQueryError(err); ok {
		respondJSON(w, http.StatusOK, ErrorResponse{Error: qe.Error()})
		return
	}

	logging.Ctx(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg("Request failed")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: errInternal.Error()}, cacheControlNoStore)
}

// sanitizeLogValue escapes control characters so request input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
