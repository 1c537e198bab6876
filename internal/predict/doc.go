// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

// Package predict estimates a game's price from its release date, developer
// and genres.
//
// A Predictor validates the request against the catalog's year range, looks
// the developer up in a DeveloperTable, one-hot encodes the genres against the
// model's known columns and hands the feature vector
//
//	[monthsSinceRelease, developerTotal, avgDev, genre flags...]
//
// to a Model. monthsSinceRelease is measured back from the catalog's latest
// release date, so dates after it yield negative values.
//
// ArtifactModel is the production Model: a standard scaler, a polynomial
// feature expansion and a linear regression read from one JSON document.
// Tests substitute their own Model.
package predict
