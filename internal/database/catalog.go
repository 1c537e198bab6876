// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package database

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/steamstats/internal/catalog"
)

// LoadRecords reads a catalog export with DuckDB. It implements
// catalog.Loader. Columns are matched by name; absent columns leave the
// field missing, except release_date which is required.
func (db *DB) LoadRecords(ctx context.Context, path string) ([]catalog.Record, error) {
	var records []catalog.Record
	checked := false

	err := db.scanFile(ctx, "load_catalog", path, func(row map[string]any) error {
		if !checked {
			if _, ok := row["release_date"]; !ok {
				return errors.New("missing 'release_date' column")
			}
			checked = true
		}
		records = append(records, recordFromRow(row))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func recordFromRow(row map[string]any) catalog.Record {
	var rec catalog.Record

	if s, ok := asString(row["app_name"]); ok {
		rec.AppName = &s
	}
	rec.ReleaseDate = asDate(row["release_date"])
	rec.Genres = asLabels(row["genres"])
	rec.Specs = asLabels(row["specs"])
	if s, ok := asString(row["sentiment"]); ok {
		rec.Sentiment = &s
	}
	if f, ok := asFloat(row["metascore"]); ok {
		rec.Metascore = &f
	}
	rec.EarlyAccess = asBool(row["early_access"])

	return rec
}

func asDate(v any) *time.Time {
	switch x := v.(type) {
	case time.Time:
		t := x.UTC()
		return &t
	case nil:
		return nil
	default:
		s, _ := asString(x)
		return catalog.ParseReleaseDate(s)
	}
}

// asLabels accepts native LIST values and encoded list text.
func asLabels(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		labels := make([]string, 0, len(x))
		for _, elem := range x {
			if s, ok := asString(elem); ok {
				labels = append(labels, s)
			}
		}
		if len(labels) == 0 {
			return nil
		}
		return labels
	case []string:
		if len(x) == 0 {
			return nil
		}
		return x
	default:
		s, _ := asString(x)
		return catalog.ParseLabelList(s)
	}
}

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case nil:
		return false
	default:
		if f, ok := asFloat(x); ok {
			return f != 0
		}
		s, _ := asString(x)
		return catalog.ParseBool(s)
	}
}
