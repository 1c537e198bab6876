// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dataset is the immutable, year-indexed catalog. All methods are safe for
// concurrent use because nothing mutates a Dataset after New returns.
type Dataset struct {
	records []Record
	byYear  map[int][]int
	minYear int
	maxYear int
	maxDate time.Time
}

// New indexes records by release year. Records without a release date are
// kept but never returned by RowsForYear.
func New(records []Record) (*Dataset, error) {
	d := &Dataset{
		records: make([]Record, len(records)),
		byYear:  make(map[int][]int),
	}
	copy(d.records, records)

	dated := 0
	for i := range d.records {
		year, ok := d.records[i].Year()
		if !ok {
			continue
		}
		d.byYear[year] = append(d.byYear[year], i)
		if dated == 0 || year < d.minYear {
			d.minYear = year
		}
		if dated == 0 || year > d.maxYear {
			d.maxYear = year
		}
		if rd := *d.records[i].ReleaseDate; rd.After(d.maxDate) {
			d.maxDate = rd
		}
		dated++
	}
	if dated == 0 {
		return nil, ErrEmptyDataset
	}
	return d, nil
}

// YearRange returns the smallest and largest release year in the dataset.
func (d *Dataset) YearRange() (minYear, maxYear int) {
	return d.minYear, d.maxYear
}

// RowsForYear returns the records released in year, in dataset order.
// The returned slice is a copy; an unknown year yields an empty slice.
func (d *Dataset) RowsForYear(year int) []Record {
	idx := d.byYear[year]
	rows := make([]Record, len(idx))
	for i, j := range idx {
		rows[i] = d.records[j]
	}
	return rows
}

// MaxDate returns the latest release date in the dataset.
func (d *Dataset) MaxDate() time.Time {
	return d.maxDate
}

// Len returns the number of records, dated or not.
func (d *Dataset) Len() int {
	return len(d.records)
}

// CheckYear reports a YearOutOfRange QueryError when year is outside the
// dataset's range.
func (d *Dataset) CheckYear(year int) error {
	if year < d.minYear || year > d.maxYear {
		return NewQueryError(ErrYearOutOfRange,
			"release year is not part of the dataset, try values between %d and %d",
			d.minYear, d.maxYear)
	}
	return nil
}

// ParseYear validates a year given as text: it must be an integer
// (surrounding whitespace allowed) inside the dataset's range.
func (d *Dataset) ParseYear(input string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, NewQueryError(ErrInvalidYearFormat, "%s is not a valid integer", input)
	}
	if err := d.CheckYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

// Loader reads catalog records from a file.
type Loader interface {
	LoadRecords(ctx context.Context, path string) ([]Record, error)
}

// Load reads path with loader and builds a Dataset.
func Load(ctx context.Context, loader Loader, path string) (*Dataset, error) {
	records, err := loader.LoadRecords(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	ds, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("index catalog %s: %w", path, err)
	}
	return ds, nil
}
