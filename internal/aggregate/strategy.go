// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package aggregate

import (
	"strconv"
	"strings"

	"github.com/tomtom215/steamstats/internal/catalog"
)

// topLimit bounds the ranked strategies.
const topLimit = 5

// Strategy is one year-scoped query. Compute returns ok=false when the rows
// hold nothing to report, and Empty is then formatted with the year into the
// NoData message.
type Strategy struct {
	Name    string
	Empty   string
	Compute func(year int, rows []catalog.Record) (Result, bool)
}

// Genres counts genre labels and keeps the five most frequent.
var Genres = Strategy{
	Name:  "genres",
	Empty: "no valid genres for year %d",
	Compute: func(_ int, rows []catalog.Record) (Result, bool) {
		counts := countLabels(rows, func(r *catalog.Record) []string { return r.Genres })
		return nonEmpty(TopN(counts, topLimit))
	},
}

// Games lists release names in dataset order under the year key.
var Games = Strategy{
	Name:  "games",
	Empty: "no releases for year %d",
	Compute: func(year int, rows []catalog.Record) (Result, bool) {
		var names []string
		for i := range rows {
			if rows[i].AppName != nil {
				names = append(names, *rows[i].AppName)
			}
		}
		if len(names) == 0 {
			return nil, false
		}
		return Ordered[[]string]{{Key: strconv.Itoa(year), Value: names}}, true
	},
}

// Specs counts feature tags and keeps the five most frequent.
var Specs = Strategy{
	Name:  "specs",
	Empty: "no valid specs for year %d",
	Compute: func(_ int, rows []catalog.Record) (Result, bool) {
		counts := countLabels(rows, func(r *catalog.Record) []string { return r.Specs })
		return nonEmpty(TopN(counts, topLimit))
	},
}

// EarlyAccess counts early access releases. A zero total is empty.
var EarlyAccess = Strategy{
	Name:  "earlyaccess",
	Empty: "no early-access data for year %d",
	Compute: func(year int, rows []catalog.Record) (Result, bool) {
		total := 0
		for i := range rows {
			if rows[i].EarlyAccess {
				total++
			}
		}
		if total == 0 {
			return nil, false
		}
		return Ordered[int]{{Key: strconv.Itoa(year), Value: total}}, true
	},
}

// reviewMarker identifies review-count labels mixed into the sentiment
// column, e.g. "3 user reviews".
const reviewMarker = "review"

// Sentiment counts sentiment labels in first-seen order without truncation.
var Sentiment = Strategy{
	Name:  "sentiment",
	Empty: "no valid sentiment for year %d",
	Compute: func(_ int, rows []catalog.Record) (Result, bool) {
		counts := newCounter[int]()
		for i := range rows {
			s := rows[i].Sentiment
			if s == nil || strings.Contains(*s, reviewMarker) {
				continue
			}
			counts.add(*s, 1)
		}
		return nonEmpty(counts.result())
	},
}

// Metascore maps names to scores and keeps the five best. A repeated name
// takes the score of its last row. Rows without an app_name or a score are
// dropped, even when the score alone would rank in the top five.
var Metascore = Strategy{
	Name:  "metascore",
	Empty: "no valid metascores for year %d",
	Compute: func(_ int, rows []catalog.Record) (Result, bool) {
		scores := newCounter[float64]()
		for i := range rows {
			r := &rows[i]
			if r.Metascore == nil || r.AppName == nil {
				continue
			}
			scores.put(*r.AppName, *r.Metascore)
		}
		return nonEmpty(TopN(scores.result(), topLimit))
	},
}

// Strategies lists every strategy in endpoint order.
func Strategies() []Strategy {
	return []Strategy{Genres, Games, Specs, EarlyAccess, Sentiment, Metascore}
}

// Lookup finds a strategy by name.
func Lookup(name string) (Strategy, bool) {
	for _, s := range Strategies() {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}

func countLabels(rows []catalog.Record, labels func(*catalog.Record) []string) Ordered[int] {
	counts := newCounter[int]()
	for i := range rows {
		for _, label := range labels(&rows[i]) {
			counts.add(label, 1)
		}
	}
	return counts.result()
}

func nonEmpty[V any](o Ordered[V]) (Result, bool) {
	if len(o) == 0 {
		return nil, false
	}
	return o, true
}
