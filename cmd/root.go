// Package cmd implements the kidcost CLI commands.
package cmd

import (
	"fmt"
	"os"

	"kidcost/internal/config"
	"kidcost/internal/estimator"
	"kidcost/internal/model"
	"kidcost/internal/refdata"
	"kidcost/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagState      string
	flagCare       string
	flagBracket    string
	flagMonths     int
	flagMultiplier float64
	flagChildren   int
	flagStartAge   int
	flagDataDir    string
	flagNoCache    bool
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "kidcost",
	Short: "Childcare cost estimator",
	Long:  "Project childcare costs by state, care type, and price bracket.",
	RunE:  runEstimate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagState, "state", "s", "", "State (e.g. \"Texas\")")
	rootCmd.PersistentFlags().StringVarP(&flagCare, "care", "c", "", "Care type: center-based or family-care")
	rootCmd.PersistentFlags().StringVarP(&flagBracket, "bracket", "b", "", "Price bracket: low, average, or high")
	rootCmd.PersistentFlags().IntVarP(&flagMonths, "months", "n", 0, "Projection duration in months (1-60)")
	rootCmd.PersistentFlags().Float64VarP(&flagMultiplier, "multiplier", "x", 0, "Cost multiplier (0.5-2.0)")
	rootCmd.PersistentFlags().IntVar(&flagChildren, "children", 0, "Number of children (savings adjustment)")
	rootCmd.PersistentFlags().IntVar(&flagStartAge, "start-age", -1, "Child age in months for an age-tiered projection")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory with dataset CSVs (overrides built-in data)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite dataset cache, reparse CSVs")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadTable is the shared reference-data path used by all commands:
// built-in table, then dataset CSVs, then config overrides.
func loadTable() (*refdata.Table, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	table := refdata.Default()

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.General.DataDir
	}

	if dataDir != "" {
		var cache refdata.DatasetCache
		if !flagNoCache {
			c, err := store.Open(store.DefaultPath())
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "  Dataset cache unavailable, parsing CSVs\n")
				}
			} else {
				defer c.Close()
				cache = c
			}
		}

		result, err := refdata.LoadDir(dataDir, cache, table)
		if err != nil {
			return nil, cfg, fmt.Errorf("loading datasets from %s: %w", dataDir, err)
		}
		if !flagQuiet && result.Files > 0 {
			fmt.Fprintf(os.Stderr, "  Loaded %d dataset file(s), %d rows (%d from cache)\n",
				result.Loaded, result.Rows, result.CacheHits)
			if result.RowErrors > 0 {
				fmt.Fprintf(os.Stderr, "  %d malformed rows skipped\n", result.RowErrors)
			}
		}
	}

	cfg.ApplyOverrides(table)
	return table, cfg, nil
}

// buildSelection resolves flags over config defaults into one selection.
func buildSelection(cfg config.Config) model.UserSelection {
	sel := model.UserSelection{
		State:      cfg.General.State,
		CareType:   model.CareType(cfg.General.CareType),
		Bracket:    model.PriceBracket(cfg.General.Bracket),
		Months:     cfg.General.Months,
		Multiplier: cfg.General.Multiplier,
		Children:   cfg.General.Children,
	}

	if flagState != "" {
		sel.State = flagState
	}
	if flagCare != "" {
		sel.CareType = model.CareType(flagCare)
	}
	if flagBracket != "" {
		sel.Bracket = model.PriceBracket(flagBracket)
	}
	if flagMonths != 0 {
		sel.Months = flagMonths
	}
	if flagMultiplier != 0 {
		sel.Multiplier = flagMultiplier
	}
	if flagChildren != 0 {
		sel.Children = flagChildren
	}
	if sel.Children < 1 {
		sel.Children = 1
	}

	return sel
}

// estimateFor runs the flat or age-tiered estimator depending on --start-age.
func estimateFor(table *refdata.Table, sel model.UserSelection) (model.CostEstimate, error) {
	if flagStartAge >= 0 {
		return estimator.EstimateAges(table, sel, flagStartAge)
	}
	return estimator.Estimate(table, sel)
}
