// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/deprecated"
)

// parquetBatchSize is the number of rows buffered per ReadRows call.
const parquetBatchSize = 512

// ParquetLoader reads catalog records directly from a parquet file.
type ParquetLoader struct{}

// LoadRecords implements Loader.
func (ParquetLoader) LoadRecords(ctx context.Context, path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	file, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	cols, err := resolveParquetColumns(file.Schema())
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, file.NumRows())
	buf := make([]parquet.Row, parquetBatchSize)
	for _, rg := range file.RowGroups() {
		if err := readRowGroup(ctx, rg, buf, cols, &records); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func readRowGroup(ctx context.Context, rg parquet.RowGroup, buf []parquet.Row, cols parquetColumns, out *[]Record) error {
	rows := rg.Rows()
	defer rows.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			*out = append(*out, cols.record(row))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read parquet rows: %w", err)
		}
		if n == 0 {
			return nil
		}
	}
}

// parquetColumns holds leaf column indexes, -1 for absent columns.
type parquetColumns struct {
	appName     int
	releaseDate int
	genres      int
	specs       int
	sentiment   int
	metascore   int
	earlyAccess int

	genresRepeated bool
	specsRepeated  bool

	// releaseUnit is the tick of an INT64 release_date column.
	releaseUnit time.Duration
}

func resolveParquetColumns(schema *parquet.Schema) (parquetColumns, error) {
	cols := parquetColumns{
		appName:     -1,
		releaseDate: -1,
		genres:      -1,
		specs:       -1,
		sentiment:   -1,
		metascore:   -1,
		earlyAccess: -1,
	}

	for _, path := range schema.Columns() {
		leaf, ok := schema.Lookup(path...)
		if !ok {
			continue
		}
		switch path[0] {
		case "app_name":
			cols.appName = leaf.ColumnIndex
		case "release_date":
			cols.releaseDate = leaf.ColumnIndex
			cols.releaseUnit = timestampUnit(leaf.Node.Type())
		case "genres":
			cols.genres = leaf.ColumnIndex
			cols.genresRepeated = leaf.MaxRepetitionLevel > 0
		case "specs":
			cols.specs = leaf.ColumnIndex
			cols.specsRepeated = leaf.MaxRepetitionLevel > 0
		case "sentiment":
			cols.sentiment = leaf.ColumnIndex
		case "metascore":
			cols.metascore = leaf.ColumnIndex
		case "early_access":
			cols.earlyAccess = leaf.ColumnIndex
		}
	}

	if cols.releaseDate < 0 {
		return cols, errors.New("parquet schema missing 'release_date' column")
	}
	return cols, nil
}

// record converts one parquet row. List columns contribute one value per
// element; text columns holding encoded lists are decoded with ParseLabelList.
func (c parquetColumns) record(row parquet.Row) Record {
	var rec Record
	for _, v := range row {
		if v.IsNull() {
			continue
		}
		switch v.Column() {
		case c.appName:
			s := valueString(v)
			rec.AppName = &s
		case c.releaseDate:
			rec.ReleaseDate = valueDate(v, c.releaseUnit)
		case c.genres:
			rec.Genres = appendLabels(rec.Genres, v, c.genresRepeated)
		case c.specs:
			rec.Specs = appendLabels(rec.Specs, v, c.specsRepeated)
		case c.sentiment:
			s := valueString(v)
			rec.Sentiment = &s
		case c.metascore:
			if f, ok := valueFloat(v); ok {
				rec.Metascore = &f
			}
		case c.earlyAccess:
			rec.EarlyAccess = valueBool(v)
		}
	}
	return rec
}

func appendLabels(labels []string, v parquet.Value, repeated bool) []string {
	if repeated {
		return append(labels, valueString(v))
	}
	return append(labels, ParseLabelList(valueString(v))...)
}

// valueString copies byte array values out of the row buffer.
func valueString(v parquet.Value) string {
	switch v.Kind() {
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}

// valueFloat converts a numeric or numeric text value. NaN counts as missing.
func valueFloat(v parquet.Value) (float64, bool) {
	f, ok := numericValue(v)
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func numericValue(v parquet.Value) (float64, bool) {
	switch v.Kind() {
	case parquet.Double:
		return v.Double(), true
	case parquet.Float:
		return float64(v.Float()), true
	case parquet.Int32:
		return float64(v.Int32()), true
	case parquet.Int64:
		return float64(v.Int64()), true
	case parquet.ByteArray:
		f, err := strconv.ParseFloat(string(v.ByteArray()), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func valueBool(v parquet.Value) bool {
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return v.Int32() != 0
	case parquet.Int64:
		return v.Int64() != 0
	case parquet.Double:
		return v.Double() != 0
	case parquet.ByteArray:
		return ParseBool(string(v.ByteArray()))
	default:
		return false
	}
}

// timestampUnit reads the unit of a TIMESTAMP column from its logical or
// converted type. Unannotated INT64 columns are read as milliseconds.
func timestampUnit(t parquet.Type) time.Duration {
	if lt := t.LogicalType(); lt != nil && lt.Timestamp != nil {
		switch {
		case lt.Timestamp.Unit.Nanos != nil:
			return time.Nanosecond
		case lt.Timestamp.Unit.Micros != nil:
			return time.Microsecond
		default:
			return time.Millisecond
		}
	}
	if ct := t.ConvertedType(); ct != nil && *ct == deprecated.TimestampMicros {
		return time.Microsecond
	}
	return time.Millisecond
}

// valueDate accepts text dates, DATE (days since epoch) and INT64
// timestamps counted in unit.
func valueDate(v parquet.Value, unit time.Duration) *time.Time {
	var t time.Time
	switch v.Kind() {
	case parquet.ByteArray:
		return ParseReleaseDate(string(v.ByteArray()))
	case parquet.Int32:
		t = time.Unix(0, 0).UTC().AddDate(0, 0, int(v.Int32()))
	case parquet.Int64:
		n := v.Int64()
		switch unit {
		case time.Nanosecond:
			t = time.Unix(0, n).UTC()
		case time.Microsecond:
			t = time.UnixMicro(n).UTC()
		default:
			t = time.UnixMilli(n).UTC()
		}
	default:
		return nil
	}
	return &t
}
