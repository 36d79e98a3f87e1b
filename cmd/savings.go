package cmd

import (
	"fmt"

	"kidcost/internal/cli"
	"kidcost/internal/estimator"

	"github.com/spf13/cobra"
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Tax credit and FSA adjustment for the estimate",
	RunE:  runSavings,
}

func init() {
	rootCmd.AddCommand(savingsCmd)
}

func runSavings(_ *cobra.Command, _ []string) error {
	table, cfg, err := loadTable()
	if err != nil {
		return err
	}

	sel := buildSelection(cfg)
	est, err := estimateFor(table, sel)
	if err != nil {
		return err
	}

	rates := cfg.SavingsRates()
	sv := estimator.ApplySavings(est, sel.Children, rates)

	fmt.Println()
	fmt.Println(cli.RenderTitle("TAX SAVINGS ESTIMATE"))
	fmt.Println()

	rows := [][]string{
		{"Children", fmt.Sprintf("%d", sel.Children)},
		{"Duration", cli.FormatMonths(sel.Months)},
		{"Annual expenses", cli.FormatCost(est.AvgYearlyCost)},
		{"---"},
		{"Credit rate", cli.FormatPercent(sv.CreditRateUsed)},
		{"Qualifying cap", cli.FormatCost(sv.QualifyingCap) + "/yr"},
		{"Credit/year", cli.FormatCost(sv.CreditPerYear)},
		{"FSA/year", cli.FormatCost(sv.FSAPerYear)},
		{"---"},
		{"Total savings", cli.FormatCost(sv.TotalSavings)},
		{"Projected total", cli.FormatCost(est.TotalCost)},
		{"Adjusted total", cli.FormatCost(sv.AdjustedTotal)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  Rough planning numbers, not tax advice. Rates are configurable")
	fmt.Println("  in the [savings] section of the config file.")

	return nil
}
