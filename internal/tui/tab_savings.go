package tui

import (
	"fmt"
	"strings"

	"kidcost/internal/cli"
	"kidcost/internal/config"
	"kidcost/internal/tui/components"
	"kidcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSavingsTab(cw int) string {
	t := theme.Active

	if a.estErr != nil {
		return a.renderEstimateError(cw)
	}

	sv := a.savings
	var b strings.Builder

	cards := []struct{ Label, Value, Caption string }{
		{"Credit / Year", cli.FormatCost(sv.CreditPerYear), fmt.Sprintf("%.0f%% of up to %s", sv.CreditRateUsed*100, cli.FormatCost(sv.QualifyingCap))},
		{"FSA / Year", cli.FormatCost(sv.FSAPerYear), "pre-tax dependent care"},
		{"Total Savings", cli.FormatCost(sv.TotalSavings), fmt.Sprintf("over %.1f years", sv.Years)},
		{"Adjusted Total", cli.FormatCost(sv.AdjustedTotal), "was " + cli.FormatCost(a.estimate.TotalCost)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Before/after bars
	labels := []string{"Projected total", "After savings"}
	values := []float64{a.estimate.TotalCost, sv.AdjustedTotal}
	colors := []lipgloss.Color{t.Orange, t.Green}
	b.WriteString(components.ContentCard(
		"Tax Adjustment",
		components.HorizontalBars(labels, values, colors, components.CardInnerWidth(cw)),
		cw,
	))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var note strings.Builder
	note.WriteString(labelStyle.Render(fmt.Sprintf(
		"Assumes the dependent care tax credit (%0.f%% of up to %s of qualifying\n"+
			"annual expenses for %d child(ren)) plus any configured dependent care FSA\n"+
			"contribution valued at your marginal rate. Edit rates in %s.\n"+
			"Rough planning numbers, not tax advice.",
		sv.CreditRateUsed*100, cli.FormatCost(sv.QualifyingCap), a.children, config.Path())))
	b.WriteString(components.ContentCard("", note.String(), cw))

	return b.String()
}
