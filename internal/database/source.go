// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package database

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/steamstats/internal/logging"
	"github.com/tomtom215/steamstats/internal/metrics"
)

// tableFunction returns the DuckDB reader call for path and the source
// format used as a metrics label.
func tableFunction(path string) (string, string, error) {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return "read_parquet(" + quoted + ")", "parquet", nil
	case ".csv", ".tsv":
		return "read_csv_auto(" + quoted + ", header = true)", "csv", nil
	case ".json", ".jsonl", ".ndjson":
		return "read_json_auto(" + quoted + ")", "json", nil
	default:
		return "", "", fmt.Errorf("unsupported file type %q (want .parquet, .csv or .json)", filepath.Ext(path))
	}
}

// scanFile runs SELECT * over path and calls fn with each row keyed by
// lowercased column name.
func (db *DB) scanFile(ctx context.Context, operation, path string, fn func(row map[string]any) error) error {
	fromClause, source, err := tableFunction(path)
	if err != nil {
		return err
	}

	start := time.Now()
	err = db.scanQuery(ctx, "SELECT * FROM "+fromClause, fn)
	metrics.RecordDBQuery(operation, source, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s from %s: %w", operation, path, err)
	}

	logging.Debug().
		Str("operation", operation).
		Str("path", path).
		Dur("duration", time.Since(start)).
		Msg("File scanned")
	return nil
}

func (db *DB) scanQuery(ctx context.Context, query string, fn func(row map[string]any) error) error {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer closeWithLog(rows, "rows")

	columns, err := rows.Columns()
	if err != nil {
		return err
	}
	for i := range columns {
		columns[i] = strings.ToLower(columns[i])
	}

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		row := make(map[string]any, len(columns))
		for i, name := range columns {
			row[name] = values[i]
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

// asString converts a scanned value to text.
func asString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		return string(x), true
	case time.Time:
		return x.Format("2006-01-02"), true
	default:
		return fmt.Sprint(x), true
	}
}

// asFloat converts a scanned numeric or numeric text value. NaN counts as
// missing.
func asFloat(v any) (float64, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case int16:
		return float64(x), true
	case int8:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint32:
		return float64(x), true
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, true
	case interface{ Float64() float64 }:
		return x.Float64(), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
