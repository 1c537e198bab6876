// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func game(name, date string) Record {
	return Record{AppName: &name, ReleaseDate: ParseReleaseDate(date)}
}

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New([]Record{
		game("Half-Life", "1998-11-19"),
		game("Unreal Tournament", "1999-11-22"),
		game("Undated", ""),
		game("Counter-Strike", "1999-06-19"),
		game("Portal 2", "2011-04-18"),
		game("Dota 2", "2013-07-09"),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return ds
}

func TestNew_YearRange(t *testing.T) {
	ds := testDataset(t)

	minYear, maxYear := ds.YearRange()
	if minYear != 1998 || maxYear != 2013 {
		t.Errorf("YearRange() = (%d, %d), want (1998, 2013)", minYear, maxYear)
	}
	if ds.Len() != 6 {
		t.Errorf("Len() = %d, want 6", ds.Len())
	}
	if got := ds.MaxDate().Format("2006-01-02"); got != "2013-07-09" {
		t.Errorf("MaxDate() = %s, want 2013-07-09", got)
	}
}

func TestNew_EmptyDataset(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{"no records", nil},
		{"no dates", []Record{game("A", ""), game("B", "someday")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.records); !errors.Is(err, ErrEmptyDataset) {
				t.Errorf("New() error = %v, want ErrEmptyDataset", err)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	records := []Record{game("Original", "2001-01-01")}
	ds, err := New(records)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	renamed := "Changed"
	records[0].AppName = &renamed

	rows := ds.RowsForYear(2001)
	if len(rows) != 1 || *rows[0].AppName != "Original" {
		t.Errorf("dataset changed after caller mutated input: %v", *rows[0].AppName)
	}
}

func TestRowsForYear(t *testing.T) {
	ds := testDataset(t)

	rows := ds.RowsForYear(1999)
	if len(rows) != 2 {
		t.Fatalf("RowsForYear(1999) returned %d rows, want 2", len(rows))
	}
	if *rows[0].AppName != "Unreal Tournament" || *rows[1].AppName != "Counter-Strike" {
		t.Errorf("RowsForYear(1999) not in dataset order: %s, %s", *rows[0].AppName, *rows[1].AppName)
	}

	if rows := ds.RowsForYear(2005); len(rows) != 0 {
		t.Errorf("RowsForYear(2005) returned %d rows, want 0", len(rows))
	}

	rows[0] = Record{}
	if again := ds.RowsForYear(1999); again[0].AppName == nil {
		t.Error("mutating a returned slice changed the dataset")
	}
}

func TestParseYear(t *testing.T) {
	ds := testDataset(t)

	tests := []struct {
		input    string
		want     int
		wantKind error
		wantMsg  string
	}{
		{input: "1999", want: 1999},
		{input: " 2013 ", want: 2013},
		{input: "+1998", want: 1998},
		{input: "abc", wantKind: ErrInvalidYearFormat, wantMsg: "abc is not a valid integer"},
		{input: "1999.5", wantKind: ErrInvalidYearFormat, wantMsg: "1999.5 is not a valid integer"},
		{input: "", wantKind: ErrInvalidYearFormat, wantMsg: " is not a valid integer"},
		{input: "1997", wantKind: ErrYearOutOfRange, wantMsg: "between 1998 and 2013"},
		{input: "2014", wantKind: ErrYearOutOfRange, wantMsg: "between 1998 and 2013"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ds.ParseYear(tt.input)
			if tt.wantKind == nil {
				if err != nil {
					t.Fatalf("ParseYear(%q) error = %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("ParseYear(%q) = %d, want %d", tt.input, got, tt.want)
				}
				return
			}
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("ParseYear(%q) error = %v, want kind %v", tt.input, err, tt.wantKind)
			}
			qe, ok := AsQueryError(err)
			if !ok {
				t.Fatalf("ParseYear(%q) error is not a QueryError", tt.input)
			}
			if !strings.Contains(qe.Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", qe.Message, tt.wantMsg)
			}
		})
	}
}

// A year inside the range with no releases passes validation; emptiness
// is reported later by the aggregation.
func TestParseYear_GapYear(t *testing.T) {
	ds := testDataset(t)

	if _, err := ds.ParseYear("2005"); err != nil {
		t.Errorf("ParseYear(2005) error = %v, want nil", err)
	}
}

type stubLoader struct {
	records []Record
	err     error
}

func (s stubLoader) LoadRecords(context.Context, string) ([]Record, error) {
	return s.records, s.err
}

func TestLoad(t *testing.T) {
	ds, err := Load(context.Background(), stubLoader{records: []Record{game("A", "2020-02-02")}}, "games.parquet")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if minYear, _ := ds.YearRange(); minYear != 2020 {
		t.Errorf("min year = %d, want 2020", minYear)
	}

	loadErr := errors.New("disk gone")
	if _, err := Load(context.Background(), stubLoader{err: loadErr}, "games.parquet"); !errors.Is(err, loadErr) {
		t.Errorf("Load() error = %v, want wrapped loader error", err)
	}

	if _, err := Load(context.Background(), stubLoader{}, "empty.parquet"); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Load() error = %v, want ErrEmptyDataset", err)
	}
}
