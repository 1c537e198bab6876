// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Dataset    DatasetConfig    `koanf:"dataset"`
	Database   DatabaseConfig   `koanf:"database"`
	Prediction PredictionConfig `koanf:"prediction"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Cache      CacheConfig      `koanf:"cache"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// Dataset loaders.
const (
	LoaderDuckDB  = "duckdb"
	LoaderParquet = "parquet"
)

// DatasetConfig selects the catalog file and how it is read.
type DatasetConfig struct {
	Path   string `koanf:"path"`
	Loader string `koanf:"loader"` // duckdb reads parquet/csv/json, parquet reads parquet natively
}

// DatabaseConfig holds DuckDB settings used while loading files.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// PredictionConfig locates the price model artifacts.
type PredictionConfig struct {
	Enabled        bool   `koanf:"enabled"`
	ModelPath      string `koanf:"model_path"`
	DevelopersPath string `koanf:"developers_path"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging or production
}

// SecurityConfig holds request throttling and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CacheConfig controls the aggregation result cache.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, the optional config file and the
// environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
