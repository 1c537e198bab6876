// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package predict

// DeveloperStats are the per-developer features the model was trained on.
type DeveloperStats struct {
	Total  float64 `json:"developer_total"`
	AvgDev float64 `json:"avg_dev"`
}

// DeveloperTable maps a developer name to its features. Names match exactly.
type DeveloperTable map[string]DeveloperStats

// Lookup returns the stats for name.
func (t DeveloperTable) Lookup(name string) (DeveloperStats, bool) {
	stats, ok := t[name]
	return stats, ok
}
