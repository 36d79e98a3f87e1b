package cmd

import (
	"fmt"

	"kidcost/internal/cli"
	"kidcost/internal/estimator"
	"kidcost/internal/model"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "One-shot cost estimate for the selected inputs",
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	table, cfg, err := loadTable()
	if err != nil {
		return err
	}

	sel := buildSelection(cfg)
	est, err := estimateFor(table, sel)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CHILDCARE COST  %s", sel.State)))
	fmt.Println()

	rows := [][]string{
		{"State", sel.State},
		{"Care type", sel.CareType.Label()},
		{"Price bracket", string(sel.Bracket)},
		{"Duration", cli.FormatMonths(sel.Months)},
		{"Multiplier", fmt.Sprintf("%.2f×", sel.Multiplier)},
	}
	monthlyLabel := "Monthly cost"
	if flagStartAge >= 0 {
		rows = append(rows, []string{"Start age", fmt.Sprintf("%d mo (%s)", flagStartAge, model.AgeGroupFor(flagStartAge))})
		monthlyLabel = "First month"
	}
	rows = append(rows,
		[]string{"---"},
		[]string{monthlyLabel, cli.FormatCost(est.MonthlyCost)},
		[]string{"Total cost", cli.FormatCost(est.TotalCost)},
		[]string{"Avg cost/month", cli.FormatCost(est.AvgMonthlyCost)},
		[]string{"Avg cost/year", cli.FormatCost(est.AvgYearlyCost)},
	)

	// Tax savings footer
	sv := estimator.ApplySavings(est, sel.Children, cfg.SavingsRates())
	rows = append(rows,
		[]string{"---"},
		[]string{"Est. tax savings", cli.FormatCost(sv.TotalSavings)},
		[]string{"Adjusted total", cli.FormatCost(sv.AdjustedTotal)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Cumulative sparkline
	vals := make([]float64, len(est.Series))
	for i, p := range est.Series {
		vals[i] = p.Cumulative
	}
	fmt.Println()
	fmt.Printf("  Cumulative: %s\n", cli.RenderSparkline(vals))

	return nil
}
