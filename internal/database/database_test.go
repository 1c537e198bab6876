// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package database

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/steamstats/internal/config"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNew_Ping(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if db.Conn() == nil {
		t.Error("Conn() returned nil")
	}
}

func TestNew_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "steamstats.duckdb")
	db, err := New(&config.DatabaseConfig{Path: path, Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("expected database directory to be created: %v", err)
	}
}

func TestTableFunction(t *testing.T) {
	tests := []struct {
		path       string
		wantPrefix string
		wantSource string
		wantErr    bool
	}{
		{"games.parquet", "read_parquet(", "parquet", false},
		{"GAMES.CSV", "read_csv_auto(", "csv", false},
		{"games.jsonl", "read_json_auto(", "json", false},
		{"it's.parquet", "read_parquet('it''s.parquet')", "parquet", false},
		{"games.xlsx", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			fn, source, err := tableFunction(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("tableFunction(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("tableFunction(%q) error = %v", tt.path, err)
			}
			if !strings.HasPrefix(fn, tt.wantPrefix) {
				t.Errorf("tableFunction(%q) = %q, want prefix %q", tt.path, fn, tt.wantPrefix)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{float64(1.5), 1.5, true},
		{int64(80), 80, true},
		{int32(7), 7, true},
		{" 92 ", 92, true},
		{"n/a", 0, false},
		{math.NaN(), 0, false},
		{float32(math.NaN()), 0, false},
		{"NaN", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		got, ok := asFloat(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("asFloat(%#v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAsLabels(t *testing.T) {
	tests := []struct {
		in   any
		want []string
	}{
		{nil, nil},
		{[]any{"Action", nil, "Indie"}, []string{"Action", "Indie"}},
		{[]any{}, nil},
		{"['Racing']", []string{"Racing"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := asLabels(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("asLabels(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
