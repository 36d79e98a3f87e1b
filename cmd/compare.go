package cmd

import (
	"fmt"

	"kidcost/internal/cli"
	"kidcost/internal/estimator"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare totals across price brackets",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	table, cfg, err := loadTable()
	if err != nil {
		return err
	}

	sel := buildSelection(cfg)
	totals, err := estimator.CompareBrackets(table, sel)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BRACKET COMPARISON  %s", sel.State)))
	fmt.Println()

	maxTotal := 0.0
	for _, bt := range totals {
		if bt.TotalCost > maxTotal {
			maxTotal = bt.TotalCost
		}
	}

	rows := make([][]string, 0, len(totals))
	for _, bt := range totals {
		marker := " "
		if bt.Bracket == sel.Bracket {
			marker = "▸"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", marker, bt.Bracket),
			cli.FormatCost(bt.MonthlyCost),
			cli.FormatCost(bt.TotalCost),
			cli.RenderHorizontalBar(bt.TotalCost, maxTotal, 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Bracket", "Monthly", "Total", ""},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  %s · %s · %s\n", sel.State, sel.CareType.Label(), cli.FormatMonths(sel.Months))

	return nil
}
