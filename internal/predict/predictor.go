// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package predict

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/steamstats/internal/cache"
	"github.com/tomtom215/steamstats/internal/catalog"
	"github.com/tomtom215/steamstats/internal/logging"
	"github.com/tomtom215/steamstats/internal/metrics"
	"github.com/tomtom215/steamstats/internal/validation"
)

// baseFeatures counts the leading non-genre features.
const baseFeatures = 3

const dateLayout = "2006-01-02"

// Request is one price query, bound from URL query parameters.
type Request struct {
	ReleaseDate string `json:"release_date" query:"release_date" validate:"required,datetime=2006-01-02"`
	Developer   string `json:"developer" query:"developer" validate:"required"`
	Genre       string `json:"genre" query:"genre" validate:"required,genrelist"`
}

// Prediction is the response body. Both values are formatted to two decimals.
type Prediction struct {
	Price string `json:"predicted_price"`
	RMSE  string `json:"RMSE"`
}

// Predictor assembles features and queries the model. It is safe for
// concurrent use.
type Predictor struct {
	dataset    *catalog.Dataset
	developers DeveloperTable
	model      Model
	columns    map[string]int
	numGenres  int
	rmse       float64
	results    *cache.Cache[Prediction]
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithCache caches successful predictions per request.
func WithCache(c *cache.Cache[Prediction]) Option {
	return func(p *Predictor) {
		p.results = c
	}
}

// New creates a Predictor. genres are the model's one-hot columns in order.
func New(ds *catalog.Dataset, developers DeveloperTable, model Model, genres []string, rmse float64, opts ...Option) (*Predictor, error) {
	if ds == nil || model == nil {
		return nil, errors.New("predictor requires a dataset and a model")
	}
	if len(genres) == 0 {
		return nil, errors.New("predictor requires at least one genre column")
	}

	caser := cases.Title(language.Und)
	columns := make(map[string]int, len(genres))
	for i, g := range genres {
		key := caser.String(strings.TrimSpace(g))
		if _, dup := columns[key]; dup {
			return nil, fmt.Errorf("duplicate genre column %q", g)
		}
		columns[key] = i
	}

	p := &Predictor{
		dataset:    ds,
		developers: developers,
		model:      model,
		columns:    columns,
		numGenres:  len(genres),
		rmse:       rmse,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewFromArtifact creates a Predictor whose columns and RMSE come from m.
func NewFromArtifact(ds *catalog.Dataset, developers DeveloperTable, m *ArtifactModel, opts ...Option) (*Predictor, error) {
	return New(ds, developers, m, m.Genres(), m.RMSE(), opts...)
}

// Predict validates req and returns the model's estimate. Request problems are
// *catalog.QueryError values; model failures are wrapped plain errors.
func (p *Predictor) Predict(ctx context.Context, req Request) (Prediction, error) {
	result, err := p.predict(req)
	metrics.RecordPrediction(catalog.KindName(err))

	if err != nil {
		logging.Ctx(ctx).Debug().
			Str("developer", req.Developer).
			Str("release_date", req.ReleaseDate).
			Str("outcome", catalog.KindName(err)).
			Msg("Prediction rejected")
	}
	return result, err
}

func (p *Predictor) predict(req Request) (Prediction, error) {
	features, err := p.Features(req)
	if err != nil {
		return Prediction{}, err
	}

	var key string
	if p.results != nil {
		key = cache.GenerateKey("prediction", features)
		if cached, ok := p.results.Get(key); ok {
			metrics.RecordCacheLookup("prediction", true)
			return cached, nil
		}
		metrics.RecordCacheLookup("prediction", false)
	}

	transformed, err := p.model.Transform(features)
	if err != nil {
		return Prediction{}, fmt.Errorf("transform features: %w", err)
	}
	price, err := p.model.Predict(transformed)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict: %w", err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Prediction{}, fmt.Errorf("model returned non-finite price %v", price)
	}

	result := Prediction{
		Price: fmt.Sprintf("%.2f", price),
		RMSE:  fmt.Sprintf("%.2f", p.rmse),
	}
	if p.results != nil {
		p.results.Set(key, result)
	}
	return result, nil
}

// Features checks req and builds the raw feature vector. Checks run in order:
// date format, year range, developer, genres.
func (p *Predictor) Features(req Request) ([]float64, error) {
	verr := validation.ValidateStruct(&req)
	if verr != nil && verr.Has("release_date") {
		return nil, catalog.NewQueryError(catalog.ErrInvalidDateFormat,
			"release_date %q is not a valid date, use YYYY-MM-DD", req.ReleaseDate)
	}

	released, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, catalog.NewQueryError(catalog.ErrInvalidDateFormat,
			"release_date %q is not a valid date, use YYYY-MM-DD", req.ReleaseDate)
	}
	if err := p.dataset.CheckYear(released.Year()); err != nil {
		return nil, err
	}

	if verr != nil && verr.Has("developer") {
		return nil, catalog.NewQueryError(catalog.ErrUnknownDeveloper, "developer is required")
	}
	dev, ok := p.developers.Lookup(req.Developer)
	if !ok {
		return nil, catalog.NewQueryError(catalog.ErrUnknownDeveloper,
			"developer %q not found in the dataset", req.Developer)
	}

	if verr != nil && verr.Has("genre") {
		return nil, catalog.NewQueryError(catalog.ErrInvalidGenreList, "genre must list at least one genre")
	}
	flags, err := p.genreFlags(req.Genre)
	if err != nil {
		return nil, err
	}

	features := make([]float64, 0, baseFeatures+p.numGenres)
	features = append(features, float64(monthsBetween(released, p.dataset.MaxDate())), dev.Total, dev.AvgDev)
	return append(features, flags...), nil
}

// genreFlags one-hot encodes a comma separated genre list.
func (p *Predictor) genreFlags(list string) ([]float64, error) {
	caser := cases.Title(language.Und)
	flags := make([]float64, p.numGenres)
	seen := 0

	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		idx, ok := p.columns[caser.String(token)]
		if !ok {
			return nil, catalog.NewQueryError(catalog.ErrInvalidGenreList,
				"genre %q is not a known genre", token)
		}
		flags[idx] = 1
		seen++
	}

	if seen == 0 {
		return nil, catalog.NewQueryError(catalog.ErrInvalidGenreList, "genre must list at least one genre")
	}
	return flags, nil
}

// monthsBetween counts calendar months from released to latest.
func monthsBetween(released, latest time.Time) int {
	return (latest.Year()-released.Year())*12 + int(latest.Month()) - int(released.Month())
}
