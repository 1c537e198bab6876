// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package catalog

import (
	"errors"
	"fmt"
)

// Query error kinds. Match them with errors.Is.
var (
	ErrInvalidYearFormat = errors.New("invalid year format")
	ErrYearOutOfRange    = errors.New("year out of range")
	ErrNoData            = errors.New("no data for criteria")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrUnknownDeveloper  = errors.New("unknown developer")
	ErrInvalidGenreList  = errors.New("invalid genre list")
)

// ErrEmptyDataset is returned by New when no record carries a release date.
var ErrEmptyDataset = errors.New("catalog has no dated records")

// QueryError is a client-facing failure. Message is returned verbatim to
// the caller; Kind classifies it.
type QueryError struct {
	Kind    error
	Message string
}

// NewQueryError formats a QueryError of the given kind.
func NewQueryError(kind error, format string, args ...any) *QueryError {
	return &QueryError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *QueryError) Error() string {
	return e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Kind
}

// AsQueryError extracts a QueryError from err's chain.
func AsQueryError(err error) (*QueryError, bool) {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}

// KindName returns a stable label for err's kind: "ok" for nil, the
// snake_case kind for query errors and "internal" otherwise.
func KindName(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidYearFormat):
		return "invalid_year_format"
	case errors.Is(err, ErrYearOutOfRange):
		return "year_out_of_range"
	case errors.Is(err, ErrNoData):
		return "no_data"
	case errors.Is(err, ErrInvalidDateFormat):
		return "invalid_date_format"
	case errors.Is(err, ErrUnknownDeveloper):
		return "unknown_developer"
	case errors.Is(err, ErrInvalidGenreList):
		return "invalid_genre_list"
	default:
		return "internal"
	}
}
