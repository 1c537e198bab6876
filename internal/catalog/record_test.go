// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package catalog

import (
	"reflect"
	"testing"
)

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2017-12-31", "2017-12-31"},
		{"2017-12-31 08:30:00", "2017-12-31"},
		{"2017-12-31T08:30:00Z", "2017-12-31"},
		{"Dec 31, 2017", "2017-12-31"},
		{"December 31, 2017", "2017-12-31"},
		{"Dec 2017", "2017-12-01"},
		{"2017", "2017-01-01"},
		{"", ""},
		{"coming soon", ""},
		{"2017-02-30", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseReleaseDate(tt.input)
			if tt.want == "" {
				if got != nil {
					t.Errorf("ParseReleaseDate(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil || got.Format("2006-01-02") != tt.want {
				t.Errorf("ParseReleaseDate(%q) = %v, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLabelList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"[]", nil},
		{"['Action', 'Indie']", []string{"Action", "Indie"}},
		{`["Free to Play", "Massively Multiplayer"]`, []string{"Free to Play", "Massively Multiplayer"}},
		{`['Tom Clancy\'s', 'Co-op']`, []string{"Tom Clancy's", "Co-op"}},
		{"[Action, Indie]", []string{"Action", "Indie"}},
		{"Action, Indie", []string{"Action", "Indie"}},
		{"Strategy", []string{"Strategy"}},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLabelList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLabelList(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"True", "true", "1", "1.0", "yes"} {
		if !ParseBool(s) {
			t.Errorf("ParseBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"False", "0", "", "0.0", "no"} {
		if ParseBool(s) {
			t.Errorf("ParseBool(%q) = true, want false", s)
		}
	}
}

func TestRecordYear(t *testing.T) {
	rec := game("Braid", "2009-04-10")
	if year, ok := rec.Year(); !ok || year != 2009 {
		t.Errorf("Year() = (%d, %v), want (2009, true)", year, ok)
	}

	var undated Record
	if _, ok := undated.Year(); ok {
		t.Error("Year() ok = true for record without date")
	}
}
