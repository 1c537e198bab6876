// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/steamstats/internal/predict"
)

// Developer table columns.
const (
	colDeveloper      = "developer"
	colDeveloperTotal = "developer_total"
	colAvgDev         = "avg_dev"
)

// LoadDevelopers reads the developer feature table. Every row must carry a
// developer name and numeric developer_total and avg_dev values; a repeated
// name keeps its last row.
func (db *DB) LoadDevelopers(ctx context.Context, path string) (predict.DeveloperTable, error) {
	table := make(predict.DeveloperTable)
	line := 0

	err := db.scanFile(ctx, "load_developers", path, func(row map[string]any) error {
		line++
		name, ok := asString(row[colDeveloper])
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("row %d: missing %s", line, colDeveloper)
		}
		total, ok := asFloat(row[colDeveloperTotal])
		if !ok {
			return fmt.Errorf("row %d: %s is not numeric", line, colDeveloperTotal)
		}
		avg, ok := asFloat(row[colAvgDev])
		if !ok {
			return fmt.Errorf("row %d: %s is not numeric", line, colAvgDev)
		}
		table[strings.TrimSpace(name)] = predict.DeveloperStats{Total: total, AvgDev: avg}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, errors.New("developer table is empty")
	}
	return table, nil
}
