// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

// Package validation wraps go-playground/validator v10 behind a shared,
// lazily built instance.
//
// Field names in errors come from the `query` struct tag so messages match
// the request parameter the client sent:
//
//	type Request struct {
//	    ReleaseDate string `query:"release_date" validate:"required,datetime=2006-01-02"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    first := verr.Errors()[0]
//	    // first.Field() == "release_date", first.Tag() == "datetime"
//	}
//
// Custom tags:
//   - genrelist: a comma separated list with at least one non-blank token
package validation
