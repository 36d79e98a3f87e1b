package cmd

import (
	"fmt"
	"strconv"

	"kidcost/internal/cli"
	"kidcost/internal/model"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Month-by-month projection table",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
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
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY PROJECTION  %s", sel.State)))
	fmt.Println()

	tiered := flagStartAge >= 0
	headers := []string{"Month", "Cost", "Cumulative"}
	if tiered {
		headers = []string{"Month", "Age", "Cost", "Cumulative"}
	}

	rows := make([][]string, 0, len(est.Series))
	for _, p := range est.Series {
		row := []string{strconv.Itoa(p.Month)}
		if tiered {
			age := flagStartAge + p.Month - 1
			row = append(row, fmt.Sprintf("%d mo (%s)", age, model.AgeGroupFor(age)))
		}
		row = append(row, cli.FormatCost(p.Monthly), cli.FormatCost(p.Cumulative))
		rows = append(rows, row)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: headers,
		Rows:    rows,
	}))

	vals := make([]float64, len(est.Series))
	for i, p := range est.Series {
		vals[i] = p.Cumulative
	}
	fmt.Println()
	fmt.Printf("  Cumulative: %s  total %s over %s\n",
		cli.RenderSparkline(vals), cli.FormatCost(est.TotalCost), cli.FormatMonths(est.Months))

	return nil
}
