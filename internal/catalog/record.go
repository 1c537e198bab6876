// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package catalog

import (
	"strconv"
	"strings"
	"time"
)

// Record is one catalog row. Nil pointers and nil slices mean the value is
// missing from the source.
type Record struct {
	AppName     *string
	ReleaseDate *time.Time
	Genres      []string
	Specs       []string
	Sentiment   *string
	Metascore   *float64
	EarlyAccess bool
}

// Year returns the release year and whether the record has a release date.
func (r *Record) Year() (int, bool) {
	if r.ReleaseDate == nil {
		return 0, false
	}
	return r.ReleaseDate.Year(), true
}

// releaseDateLayouts are tried in order by ParseReleaseDate.
var releaseDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

// ParseReleaseDate parses the date formats found in catalog exports.
// Unparseable or empty input yields nil, the same as a missing value.
func ParseReleaseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseLabelList decodes a list column stored as text. It accepts the
// bracketed form written by Python exports, e.g. ['Action', 'Indie'],
// and plain comma separated values. Empty input yields nil.
func ParseLabelList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return splitLabels(s)
	}

	body := s[1 : len(s)-1]
	var labels []string
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case c == ' ' || c == ',':
			i++
		case c == '\'' || c == '"':
			var b strings.Builder
			j := i + 1
			for ; j < len(body) && body[j] != c; j++ {
				if body[j] == '\\' && j+1 < len(body) {
					j++
				}
				b.WriteByte(body[j])
			}
			labels = append(labels, b.String())
			i = j + 1
		default:
			j := strings.IndexByte(body[i:], ',')
			if j < 0 {
				j = len(body) - i
			}
			if label := strings.TrimSpace(body[i : i+j]); label != "" {
				labels = append(labels, label)
			}
			i += j
		}
	}
	return labels
}

func splitLabels(s string) []string {
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	if len(labels) == 0 {
		return nil
	}
	return labels
}

// ParseBool reads the boolean spellings used by catalog exports.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y":
		return true
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && n != 0
}
