// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package predict

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-json"
)

// Model turns a raw feature vector into a price.
type Model interface {
	// Transform maps raw features into the model's input space.
	Transform(features []float64) ([]float64, error)
	// Predict evaluates transformed features.
	Predict(transformed []float64) (float64, error)
}

// maxDegree bounds the polynomial expansion.
const maxDegree = 4

// Artifact is the on-disk form of an ArtifactModel.
type Artifact struct {
	Genres       []string   `json:"genres"`
	Scaler       Scaler     `json:"scaler"`
	Polynomial   Polynomial `json:"polynomial"`
	Coefficients []float64  `json:"coefficients"`
	Intercept    float64    `json:"intercept"`
	RMSE         float64    `json:"rmse"`
}

// Scaler standardizes each feature as (x - mean) / scale.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Polynomial describes the feature expansion.
type Polynomial struct {
	Degree      int  `json:"degree"`
	IncludeBias bool `json:"include_bias"`
}

// ArtifactModel is a fitted scaler, polynomial expansion and linear
// regression. It is immutable after construction.
type ArtifactModel struct {
	genres    []string
	mean      []float64
	scale     []float64
	terms     [][]int
	coef      []float64
	intercept float64
	rmse      float64
}

// LoadArtifact reads a model artifact from a JSON file.
func LoadArtifact(path string) (*ArtifactModel, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	m, err := ParseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}
	return m, nil
}

// ParseArtifact decodes and checks a JSON model artifact.
func ParseArtifact(data []byte) (*ArtifactModel, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return NewArtifactModel(a)
}

// NewArtifactModel validates the artifact's dimensions. Every vector must
// agree with the feature width 3 + len(Genres).
func NewArtifactModel(a Artifact) (*ArtifactModel, error) {
	if len(a.Genres) == 0 {
		return nil, errors.New("artifact lists no genres")
	}
	if slices.Contains(a.Genres, "") {
		return nil, errors.New("artifact lists an empty genre")
	}

	width := baseFeatures + len(a.Genres)
	if len(a.Scaler.Mean) != width || len(a.Scaler.Scale) != width {
		return nil, fmt.Errorf("scaler has %d means and %d scales, want %d",
			len(a.Scaler.Mean), len(a.Scaler.Scale), width)
	}
	if a.Polynomial.Degree < 1 || a.Polynomial.Degree > maxDegree {
		return nil, fmt.Errorf("polynomial degree %d outside 1..%d", a.Polynomial.Degree, maxDegree)
	}

	terms := polynomialTerms(width, a.Polynomial.Degree, a.Polynomial.IncludeBias)
	if len(a.Coefficients) != len(terms) {
		return nil, fmt.Errorf("got %d coefficients, expansion yields %d terms", len(a.Coefficients), len(terms))
	}
	if a.RMSE < 0 {
		return nil, fmt.Errorf("negative rmse %v", a.RMSE)
	}

	scale := slices.Clone(a.Scaler.Scale)
	for i, s := range scale {
		if s == 0 {
			scale[i] = 1
		}
	}

	return &ArtifactModel{
		genres:    slices.Clone(a.Genres),
		mean:      slices.Clone(a.Scaler.Mean),
		scale:     scale,
		terms:     terms,
		coef:      slices.Clone(a.Coefficients),
		intercept: a.Intercept,
		rmse:      a.RMSE,
	}, nil
}

// Genres returns the genre columns in one-hot order.
func (m *ArtifactModel) Genres() []string {
	return slices.Clone(m.genres)
}

// RMSE returns the model's reported root mean squared error.
func (m *ArtifactModel) RMSE() float64 {
	return m.rmse
}

// Transform standardizes features and expands them into polynomial terms.
func (m *ArtifactModel) Transform(features []float64) ([]float64, error) {
	if len(features) != len(m.mean) {
		return nil, fmt.Errorf("got %d features, want %d", len(features), len(m.mean))
	}

	z := make([]float64, len(features))
	for i, x := range features {
		z[i] = (x - m.mean[i]) / m.scale[i]
	}

	out := make([]float64, len(m.terms))
	for i, term := range m.terms {
		v := 1.0
		for _, idx := range term {
			v *= z[idx]
		}
		out[i] = v
	}
	return out, nil
}

// Predict applies the linear regression.
func (m *ArtifactModel) Predict(transformed []float64) (float64, error) {
	if len(transformed) != len(m.coef) {
		return 0, fmt.Errorf("got %d terms, want %d", len(transformed), len(m.coef))
	}
	y := m.intercept
	for i, v := range transformed {
		y += m.coef[i] * v
	}
	return y, nil
}

// polynomialTerms lists the feature index products of the expansion: the
// bias term (an empty product) first when requested, then every combination
// with replacement of degree 1 through degree in lexicographic order.
func polynomialTerms(n, degree int, bias bool) [][]int {
	var terms [][]int
	if bias {
		terms = append(terms, nil)
	}

	for d := 1; d <= degree; d++ {
		combo := make([]int, d)
		var walk func(pos, start int)
		walk = func(pos, start int) {
			if pos == d {
				terms = append(terms, slices.Clone(combo))
				return
			}
			for i := start; i < n; i++ {
				combo[pos] = i
				walk(pos+1, i)
			}
		}
		walk(0, 0)
	}
	return terms
}
