// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/steamstats/internal/aggregate"
	"github.com/tomtom215/steamstats/internal/catalog"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("indent output: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func writeError(w io.Writer, qe *catalog.QueryError) error {
	return writeJSON(w, map[string]string{"error": qe.Error()})
}

// resultRows flattens a result into key/value rows. A list value yields one
// row per element.
func resultRows(result aggregate.Result) ([][]string, error) {
	var rows [][]string
	switch r := result.(type) {
	case aggregate.Ordered[int]:
		for _, e := range r {
			rows = append(rows, []string{e.Key, strconv.Itoa(e.Value)})
		}
	case aggregate.Ordered[float64]:
		for _, e := range r {
			rows = append(rows, []string{e.Key, strconv.FormatFloat(e.Value, 'f', -1, 64)})
		}
	case aggregate.Ordered[[]string]:
		for _, e := range r {
			for _, v := range e.Value {
				rows = append(rows, []string{e.Key, v})
			}
		}
	default:
		return nil, fmt.Errorf("unsupported result type %T", result)
	}
	return rows, nil
}

func writeTable(w io.Writer, result aggregate.Result) error {
	rows, err := resultRows(result)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func writeRangeTable(w io.Writer, r yearRange) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Records", "Min Year", "Max Year"})
	table.Append([]string{strconv.Itoa(r.Records), strconv.Itoa(r.MinYear), strconv.Itoa(r.MaxYear)})
	table.Render()
	return nil
}
