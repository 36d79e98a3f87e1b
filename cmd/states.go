package cmd

import (
	"fmt"
	"sort"

	"kidcost/internal/cli"
	"kidcost/internal/estimator"
	"kidcost/internal/model"

	"github.com/spf13/cobra"
)

var flagStatesSort string

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List states with their reference costs",
	RunE:  runStates,
}

func init() {
	statesCmd.Flags().StringVar(&flagStatesSort, "sort", "name", "Sort order: name or cost")
	rootCmd.AddCommand(statesCmd)
}

func runStates(_ *cobra.Command, _ []string) error {
	table, cfg, err := loadTable()
	if err != nil {
		return err
	}

	sel := buildSelection(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STATES  %s · %s", sel.CareType.Label(), sel.Bracket)))
	fmt.Println()

	type entry struct {
		state   string
		monthly float64
		costs   [3]float64
	}

	var entries []entry
	for _, state := range table.States(sel.CareType) {
		costs, ok := table.AnnualCosts(state, sel.CareType)
		if !ok {
			continue
		}
		monthly, ok := table.MonthlyBase(state, sel.CareType, sel.Bracket, model.AgeInfant)
		if !ok {
			continue
		}
		entries = append(entries, entry{
			state:   state,
			monthly: monthly * sel.Multiplier,
			costs:   [3]float64{costs.Infant, costs.Toddler, costs.Preschool},
		})
	}

	if flagStatesSort == "cost" {
		sort.Slice(entries, func(i, j int) bool { return entries[i].monthly > entries[j].monthly })
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		marker := " "
		if e.state == sel.State {
			marker = "▸"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", marker, e.state),
			cli.FormatCost(e.costs[0]),
			cli.FormatCost(e.costs[1]),
			cli.FormatCost(e.costs[2]),
			cli.FormatCost(e.monthly),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"State", "Infant/yr", "Toddler/yr", "Preschool/yr", "Monthly (infant)"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  Monthly column uses the %s bracket at %.2f× · bounds %d-%d months\n",
		sel.Bracket, sel.Multiplier, estimator.MinMonths, estimator.MaxMonths)

	return nil
}
