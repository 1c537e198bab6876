// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/steamstats/internal/aggregate"
)

const gamesCSV = `app_name,release_date,genres,specs,sentiment,metascore,early_access
Portal 2,2011-04-18,"['Action', 'Adventure']","['Single-player']",Overwhelmingly Positive,95,False
Terraria,2011-05-16,"['Action', 'Indie']","['Multi-player']",Overwhelmingly Positive,83,False
Rust,2013-12-11,"['Action']","['Multi-player']",3 user reviews,,True
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.csv")
	if err := os.WriteFile(path, []byte(gamesCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStrategyCommands(t *testing.T) {
	dataset := writeDataset(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"genres json", []string{"genres", "2011"}, []string{`"Action": 2`, `"Adventure": 1`, `"Indie": 1`}},
		{"games json", []string{"games", "2011"}, []string{`"2011": [`, `"Portal 2"`, `"Terraria"`}},
		{"earlyaccess json", []string{"earlyaccess", "2013"}, []string{`"2013": 1`}},
		{"sentiment json", []string{"sentiment", "2011"}, []string{`"Overwhelmingly Positive": 2`}},
		{"metascore table", []string{"metascore", "2011", "--format", "table"}, []string{"Portal 2", "95", "Terraria", "83"}},
		{"games table", []string{"games", "2011", "--format", "table"}, []string{"2011", "Portal 2", "Terraria"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(tt.args, "--dataset", dataset)...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestStrategyCommands_QueryErrors(t *testing.T) {
	dataset := writeDataset(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"year out of range", []string{"genres", "2020"}, "try values between 2011 and 2013"},
		{"no early access", []string{"earlyaccess", "2011"}, "no early-access data for year 2011"},
		{"not a year", []string{"specs", "abc"}, `"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(tt.args, "--dataset", dataset)...)
			if err == nil {
				t.Fatal("Execute() error = nil, want error")
			}
			if !strings.Contains(out, `"error"`) || !strings.Contains(out, tt.want) {
				t.Errorf("output = %s, want error object containing %q", out, tt.want)
			}
		})
	}
}

func TestRangeCommand(t *testing.T) {
	dataset := writeDataset(t)

	out, err := execute(t, "range", "--dataset", dataset)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{`"records": 3`, `"min_year": 2011`, `"max_year": 2013`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "range", "--dataset", dataset, "--format", "table")
	if err != nil {
		t.Fatalf("Execute() table error = %v", err)
	}
	if !strings.Contains(out, "2013") {
		t.Errorf("table output missing max year:\n%s", out)
	}
}

func TestFlagErrors(t *testing.T) {
	dataset := writeDataset(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"range", "--dataset", dataset, "--format", "xml"}},
		{"unknown loader", []string{"range", "--dataset", dataset, "--loader", "sqlite"}},
		{"missing dataset", []string{"range", "--dataset", filepath.Join(t.TempDir(), "none.csv")}},
		{"parquet loader on csv", []string{"range", "--dataset", dataset, "--loader", "parquet"}},
		{"missing year", []string{"genres", "--dataset", dataset}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("Execute() error = nil, want error")
			}
		})
	}
}

func TestRun_ReportsErrors(t *testing.T) {
	dataset := writeDataset(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing dataset", []string{"range", "--dataset", filepath.Join(t.TempDir(), "none.parquet")}, "no such file"},
		{"unsupported extension", []string{"range", "--dataset", writeText(t, "games.txt")}, "unsupported file type"},
		{"unknown format", []string{"range", "--dataset", dataset, "--format", "xml"}, `unknown format "xml"`},
		{"query error", []string{"genres", "1990", "--dataset", dataset}, "try values between 2011 and 2013"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
			if !strings.HasPrefix(stderr.String(), "Error: ") {
				t.Errorf("stderr = %q, want an Error: line", stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestRun_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"range", "--dataset", writeDataset(t)}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"records": 3`) {
		t.Errorf("stdout = %s", stdout.String())
	}
}

func writeText(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not a dataset"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResultRows(t *testing.T) {
	rows, err := resultRows(aggregate.Ordered[[]string]{{Key: "2011", Value: []string{"a", "b"}}})
	if err != nil {
		t.Fatalf("resultRows() error = %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "2011" || rows[1][1] != "b" {
		t.Errorf("rows = %v", rows)
	}

	rows, err = resultRows(aggregate.Ordered[float64]{{Key: "Portal 2", Value: 95}})
	if err != nil {
		t.Fatalf("resultRows() error = %v", err)
	}
	if rows[0][1] != "95" {
		t.Errorf("float value = %q, want 95", rows[0][1])
	}
}
