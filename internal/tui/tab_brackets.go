package tui

import (
	"fmt"
	"strings"

	"kidcost/internal/cli"
	"kidcost/internal/model"
	"kidcost/internal/tui/components"
	"kidcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBracketsTab(cw int) string {
	t := theme.Active

	if len(a.comparison) == 0 {
		return a.renderEstimateError(cw)
	}

	var b strings.Builder

	// Row 1: one metric card per bracket
	cards := make([]struct{ Label, Value, Caption string }, 0, len(a.comparison))
	for _, bt := range a.comparison {
		label := string(bt.Bracket)
		if bt.Bracket == a.bracket() {
			label = "▸ " + label
		}
		cards = append(cards, struct{ Label, Value, Caption string }{
			Label:   label,
			Value:   cli.FormatCost(bt.TotalCost),
			Caption: cli.FormatCost(bt.MonthlyCost) + "/mo",
		})
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: totals as horizontal bars
	labels := make([]string, len(a.comparison))
	values := make([]float64, len(a.comparison))
	colors := make([]lipgloss.Color, len(a.comparison))
	barColors := map[model.PriceBracket]lipgloss.Color{
		model.BracketLow:     t.Green,
		model.BracketAverage: t.Blue,
		model.BracketHigh:    t.Orange,
	}
	for i, bt := range a.comparison {
		labels[i] = string(bt.Bracket)
		values[i] = bt.TotalCost
		colors[i] = barColors[bt.Bracket]
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Bracket Totals · %s · %s · %s", a.selectedState(), a.careType().Label(), cli.FormatMonths(a.months)),
		components.HorizontalBars(labels, values, colors, components.CardInnerWidth(cw)),
		cw,
	))
	b.WriteString("\n")

	// Row 3: annual reference costs per age group for the selected state
	b.WriteString(a.renderStateReference(cw))

	return b.String()
}

// renderStateReference shows the raw annual amounts behind the estimate.
func (a App) renderStateReference(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	for _, care := range model.CareTypes {
		costs, ok := a.table.AnnualCosts(a.selectedState(), care)
		if !ok {
			continue
		}
		marker := "  "
		if care == a.careType() {
			marker = lipgloss.NewStyle().Foreground(t.AccentBright).Render("▸ ")
		}
		body.WriteString(marker)
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", care.Label())))
		for _, group := range model.AgeGroups {
			body.WriteString(labelStyle.Render(string(group) + " "))
			body.WriteString(valueStyle.Render(fmt.Sprintf("%-10s", cli.FormatCost(costs.For(group)))))
		}
		body.WriteString("\n")
	}

	factorLine := labelStyle.Render("  Bracket factors: ")
	for i, bracket := range model.Brackets {
		if i > 0 {
			factorLine += labelStyle.Render(" · ")
		}
		f, _ := a.table.BracketFactor(bracket)
		factorLine += valueStyle.Render(fmt.Sprintf("%s %.2f×", bracket, f))
	}
	body.WriteString(factorLine)

	return components.ContentCard("Annual Reference Costs · "+a.selectedState(), body.String(), cw)
}
