package cmd

import (
	"fmt"

	"kidcost/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    State:      %s\n", cfg.General.State)
	fmt.Printf("    Care type:  %s\n", cfg.General.CareType)
	fmt.Printf("    Bracket:    %s\n", cfg.General.Bracket)
	fmt.Printf("    Months:     %d\n", cfg.General.Months)
	fmt.Printf("    Multiplier: %.2f\n", cfg.General.Multiplier)
	fmt.Printf("    Children:   %d\n", cfg.General.Children)
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data dir:   %s\n", cfg.General.DataDir)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	rates := cfg.SavingsRates()
	fmt.Println("  [Savings]")
	fmt.Printf("    Credit rate:      %.0f%%\n", rates.CreditRate*100)
	fmt.Printf("    Credit caps:      $%.0f / $%.0f (one / many children)\n", rates.CreditCapOne, rates.CreditCapMany)
	fmt.Printf("    FSA limit:        $%.0f\n", rates.FSALimit)
	if rates.FSAContribution > 0 {
		fmt.Printf("    FSA contribution: $%.0f at %.0f%% marginal rate\n", rates.FSAContribution, rates.MarginalRate*100)
	} else {
		fmt.Println("    FSA contribution: not set")
	}
	fmt.Println()

	overrides := len(cfg.Overrides.CenterBased) + len(cfg.Overrides.FamilyCare)
	if overrides > 0 {
		fmt.Printf("  %d per-state cost override(s) configured.\n", overrides)
	}
	fmt.Println("  Run `kidcost setup` to reconfigure.")
	return nil
}
