// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/steamstats/internal/aggregate"
	"github.com/tomtom215/steamstats/internal/catalog"
	"github.com/tomtom215/steamstats/internal/config"
	"github.com/tomtom215/steamstats/internal/database"
	"github.com/tomtom215/steamstats/internal/logging"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	dataset string
	loader  string
	format  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Run catalog aggregations against a dataset file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format != formatJSON && opts.format != formatTable {
				return fmt.Errorf("unknown format %q, use json or table", opts.format)
			}
			if opts.loader != config.LoaderDuckDB && opts.loader != config.LoaderParquet {
				return fmt.Errorf("unknown loader %q, use duckdb or parquet", opts.loader)
			}
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logging.Init(logging.Config{
				Level:     level,
				Format:    "console",
				Timestamp: true,
				Output:    cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataset, "dataset", "data/steam_games.parquet", "catalog file (parquet, csv or json)")
	flags.StringVar(&opts.loader, "loader", config.LoaderDuckDB, "dataset reader, 'duckdb' or 'parquet'")
	flags.StringVar(&opts.format, "format", formatJSON, "output format, 'json' or 'table'")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	for _, s := range aggregate.Strategies() {
		root.AddCommand(newStrategyCmd(opts, s))
	}
	root.AddCommand(newRangeCmd(opts))

	return root
}

func newStrategyCmd(opts *options, s aggregate.Strategy) *cobra.Command {
	return &cobra.Command{
		Use:   s.Name + " YEAR",
		Short: fmt.Sprintf("Run the %s aggregation for one release year", s.Name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}

			result, err := aggregate.New(ds).Run(cmd.Context(), s, args[0])
			if err != nil {
				var qe *catalog.QueryError
				if errors.As(err, &qe) {
					if werr := writeError(cmd.OutOrStdout(), qe); werr != nil {
						return werr
					}
				}
				return err
			}

			if opts.format == formatTable {
				return writeTable(cmd.OutOrStdout(), result)
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
}

// yearRange is the output of the range command.
type yearRange struct {
	Records int `json:"records"`
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
}

func newRangeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Print the release year range and record count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			minYear, maxYear := ds.YearRange()
			out := yearRange{Records: ds.Len(), MinYear: minYear, MaxYear: maxYear}

			if opts.format == formatTable {
				return writeRangeTable(cmd.OutOrStdout(), out)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

// loadDataset reads the catalog with the selected loader. The duckdb loader
// uses a throwaway in-memory database.
func loadDataset(ctx context.Context, opts *options) (*catalog.Dataset, error) {
	if _, err := os.Stat(opts.dataset); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", opts.dataset, err)
	}

	if opts.loader == config.LoaderParquet {
		return catalog.Load(ctx, catalog.ParquetLoader{}, opts.dataset)
	}

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB"})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close database")
		}
	}()

	return catalog.Load(ctx, db, opts.dataset)
}
