package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kidcost/internal/config"
	"kidcost/internal/estimator"
	"kidcost/internal/model"
	"kidcost/internal/refdata"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()
	table := refdata.Default()

	fmt.Println()
	fmt.Println("  Welcome to kidcost!")
	fmt.Println()
	fmt.Printf("  Built-in data covers %d states.\n\n", len(table.States(model.CareCenterBased)))

	// 1. State
	fmt.Println("  1. Which state are you in?")
	fmt.Printf("     Current: %s\n", cfg.General.State)
	fmt.Print("     > ")
	state, _ := reader.ReadString('\n')
	state = strings.TrimSpace(state)
	if state != "" {
		if _, ok := table.AnnualCosts(state, model.CareCenterBased); ok {
			cfg.General.State = state
		} else {
			fmt.Printf("     Unknown state %q, keeping %s\n", state, cfg.General.State)
		}
	}
	fmt.Println()

	// 2. Care type
	fmt.Println("  2. What kind of childcare?")
	fmt.Println("     (1) Center based [default]")
	fmt.Println("     (2) Family care")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.CareType = string(model.CareFamilyCare)
	default:
		cfg.General.CareType = string(model.CareCenterBased)
	}
	fmt.Println()

	// 3. Price bracket
	fmt.Println("  3. Do you expect prices near the low, average, or high end?")
	fmt.Println("     (1) Low")
	fmt.Println("     (2) Average [default]")
	fmt.Println("     (3) High")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.General.Bracket = string(model.BracketLow)
	case "3":
		cfg.General.Bracket = string(model.BracketHigh)
	default:
		cfg.General.Bracket = string(model.BracketAverage)
	}
	fmt.Println()

	// 4. Duration
	fmt.Printf("  4. Default projection duration in months (%d-%d)\n", estimator.MinMonths, estimator.MaxMonths)
	fmt.Printf("     Current: %d\n", cfg.General.Months)
	fmt.Print("     > ")
	monthsIn, _ := reader.ReadString('\n')
	if m, err := strconv.Atoi(strings.TrimSpace(monthsIn)); err == nil &&
		m >= estimator.MinMonths && m <= estimator.MaxMonths {
		cfg.General.Months = m
	}
	fmt.Println()

	// 5. Theme
	fmt.Println("  5. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (16 colors)")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `kidcost` for an estimate or `kidcost tui` for the dashboard.")
	return nil
}
