// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package predict

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestPolynomialTerms(t *testing.T) {
	got := polynomialTerms(2, 2, true)
	want := [][]int{nil, {0}, {1}, {0, 0}, {0, 1}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("polynomialTerms(2, 2, true) = %v, want %v", got, want)
	}

	tests := []struct {
		n, degree int
		bias      bool
		want      int
	}{
		{4, 1, false, 4},
		{4, 2, true, 15},
		{3, 3, false, 19},
		{6, 2, true, 28},
	}
	for _, tt := range tests {
		if got := len(polynomialTerms(tt.n, tt.degree, tt.bias)); got != tt.want {
			t.Errorf("len(polynomialTerms(%d, %d, %v)) = %d, want %d", tt.n, tt.degree, tt.bias, got, tt.want)
		}
	}
}

func linearArtifact() Artifact {
	return Artifact{
		Genres: []string{"Action"},
		Scaler: Scaler{
			Mean:  []float64{0, 0, 0, 0},
			Scale: []float64{1, 2, 0, 1},
		},
		Polynomial:   Polynomial{Degree: 1},
		Coefficients: []float64{1, 1, 1, 1},
		Intercept:    0.5,
		RMSE:         7.25,
	}
}

func TestArtifactModel_Linear(t *testing.T) {
	m, err := NewArtifactModel(linearArtifact())
	if err != nil {
		t.Fatalf("NewArtifactModel() error = %v", err)
	}

	transformed, err := m.Transform([]float64{2, 4, 3, 1})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	// zero scale is treated as one
	if want := []float64{2, 2, 3, 1}; !reflect.DeepEqual(transformed, want) {
		t.Errorf("Transform() = %v, want %v", transformed, want)
	}

	price, err := m.Predict(transformed)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if price != 8.5 {
		t.Errorf("Predict() = %v, want 8.5", price)
	}
	if m.RMSE() != 7.25 {
		t.Errorf("RMSE() = %v", m.RMSE())
	}
	if !reflect.DeepEqual(m.Genres(), []string{"Action"}) {
		t.Errorf("Genres() = %v", m.Genres())
	}
}

func TestArtifactModel_Quadratic(t *testing.T) {
	a := Artifact{
		Genres: []string{"Action"},
		Scaler: Scaler{
			Mean:  []float64{1, 0, 0, 0},
			Scale: []float64{1, 1, 1, 1},
		},
		Polynomial:   Polynomial{Degree: 2, IncludeBias: true},
		Coefficients: make([]float64, 15),
	}
	// bias, then x0..x3, then x0*x0 is the sixth term
	a.Coefficients[0] = 10
	a.Coefficients[5] = 2

	m, err := NewArtifactModel(a)
	if err != nil {
		t.Fatalf("NewArtifactModel() error = %v", err)
	}

	transformed, err := m.Transform([]float64{4, 1, 1, 1})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if len(transformed) != 15 {
		t.Fatalf("Transform() returned %d terms, want 15", len(transformed))
	}
	if transformed[0] != 1 || transformed[5] != 9 {
		t.Errorf("bias = %v, x0^2 = %v; want 1 and 9", transformed[0], transformed[5])
	}

	price, err := m.Predict(transformed)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if math.Abs(price-28) > 1e-9 {
		t.Errorf("Predict() = %v, want 28", price)
	}
}

func TestArtifactModel_WidthMismatch(t *testing.T) {
	m, err := NewArtifactModel(linearArtifact())
	if err != nil {
		t.Fatalf("NewArtifactModel() error = %v", err)
	}
	if _, err := m.Transform([]float64{1, 2, 3}); err == nil {
		t.Error("Transform() accepted a short vector")
	}
	if _, err := m.Predict([]float64{1}); err == nil {
		t.Error("Predict() accepted a short vector")
	}
}

func TestNewArtifactModel_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Artifact)
		want   string
	}{
		{"no genres", func(a *Artifact) { a.Genres = nil }, "no genres"},
		{"empty genre", func(a *Artifact) { a.Genres = []string{""} }, "empty genre"},
		{"short scaler", func(a *Artifact) { a.Scaler.Mean = a.Scaler.Mean[:3] }, "scaler"},
		{"degree zero", func(a *Artifact) { a.Polynomial.Degree = 0 }, "degree"},
		{"degree too high", func(a *Artifact) { a.Polynomial.Degree = 9 }, "degree"},
		{"coefficient count", func(a *Artifact) { a.Polynomial.IncludeBias = true }, "coefficients"},
		{"negative rmse", func(a *Artifact) { a.RMSE = -1 }, "rmse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := linearArtifact()
			tt.mutate(&a)
			_, err := NewArtifactModel(a)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("NewArtifactModel() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

const artifactJSON = `{
  "genres": ["Action", "Indie"],
  "scaler": {"mean": [10, 5, 2, 0, 0], "scale": [2, 1, 1, 1, 1]},
  "polynomial": {"degree": 1, "include_bias": false},
  "coefficients": [1, 0, 0, 3, 4],
  "intercept": 1,
  "rmse": 12.345
}`

func TestLoadArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "price_model.json")
	if err := os.WriteFile(path, []byte(artifactJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact() error = %v", err)
	}
	if !reflect.DeepEqual(m.Genres(), []string{"Action", "Indie"}) {
		t.Errorf("Genres() = %v", m.Genres())
	}

	transformed, err := m.Transform([]float64{14, 5, 2, 0, 1})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	price, err := m.Predict(transformed)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	// (14-10)/2 * 1 + 1 * 4 + 1
	if price != 7 {
		t.Errorf("Predict() = %v, want 7", price)
	}
}

func TestLoadArtifact_Errors(t *testing.T) {
	dir := t.TempDir()
	badJSON := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badJSON, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{badJSON, filepath.Join(dir, "missing.json")} {
		if _, err := LoadArtifact(path); err == nil {
			t.Errorf("LoadArtifact(%s) expected error", filepath.Base(path))
		}
	}
}

func TestNewFromArtifact(t *testing.T) {
	m, err := ParseArtifact([]byte(artifactJSON))
	if err != nil {
		t.Fatalf("ParseArtifact() error = %v", err)
	}
	p, err := NewFromArtifact(testDataset(t), testDevelopers, m)
	if err != nil {
		t.Fatalf("NewFromArtifact() error = %v", err)
	}

	features, err := p.Features(Request{ReleaseDate: "2016-06-01", Developer: "Valve", Genre: "indie"})
	if err != nil {
		t.Fatalf("Features() error = %v", err)
	}
	if want := []float64{12, 28, 9.99, 0, 1}; !reflect.DeepEqual(features, want) {
		t.Errorf("Features() = %v, want %v", features, want)
	}
	if p.rmse != 12.345 {
		t.Errorf("rmse = %v", p.rmse)
	}
}
