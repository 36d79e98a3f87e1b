package tui

import (
	"errors"
	"fmt"
	"strings"

	"kidcost/internal/cli"
	"kidcost/internal/estimator"
	"kidcost/internal/model"
	"kidcost/internal/tui/components"
	"kidcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// inputRow is one line of the selection panel.
type inputRow struct {
	label string
	value string
}

func (a App) inputRows() []inputRow {
	startAge := fmt.Sprintf("%d mo (%s)", a.startAge, model.AgeGroupFor(a.startAge))
	if !a.tiered {
		startAge += "  [a] to enable"
	}

	return []inputRow{
		{"State", a.selectedState()},
		{"Care type", a.careType().Label()},
		{"Price bracket", string(a.bracket())},
		{"Duration", fmt.Sprintf("%d (%s)", a.months, cli.FormatMonths(a.months))},
		{"Multiplier", fmt.Sprintf("%.2f×", a.multiplier)},
		{"Children", fmt.Sprintf("%d", a.children)},
		{"Start age", startAge},
	}
}

// renderInputPanel renders the selection card with the input cursor.
func (a App) renderInputPanel(outerW int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedLabel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selectedValue := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(outerW)

	var b strings.Builder
	for i, row := range a.inputRows() {
		if i == a.inputCursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedLabel.Render(fmt.Sprintf("%-14s", row.label)))
			b.WriteString(selectedValue.Render("‹ " + truncStr(row.value, innerW-20) + " ›"))
		} else {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", row.label)))
			b.WriteString(valueStyle.Render(truncStr(row.value, innerW-16)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[j/k] field  [h/l] adjust  [H/L] big step"))

	return components.ContentCard("Your Selection", b.String(), outerW)
}

func (a App) renderEstimateError(outerW int) string {
	var msg string
	switch {
	case errors.Is(a.estErr, estimator.ErrNoData):
		msg = fmt.Sprintf("No data for %s / %s / %s.\nTry another state or care type, or load a dataset with --data-dir.",
			a.selectedState(), a.careType().Label(), a.bracket())
	default:
		msg = a.estErr.Error()
	}
	return components.ErrorCard("No Estimate", msg, outerW)
}

func (a App) renderEstimateTab(cw int) string {
	var b strings.Builder

	wide := cw >= 100
	inputW := cw
	resultW := cw
	if wide {
		halves := components.LayoutRow(cw, 2)
		inputW = halves[0]
		resultW = halves[1]
	}

	input := a.renderInputPanel(inputW)

	var result string
	if a.estErr != nil {
		result = a.renderEstimateError(resultW)
	} else {
		result = a.renderEstimateSummary(resultW)
	}

	if wide {
		b.WriteString(components.CardRow([]string{input, result}))
	} else {
		b.WriteString(input)
		b.WriteString("\n")
		b.WriteString(result)
	}
	b.WriteString("\n")
	b.WriteString(a.renderDataInfo(cw))

	return b.String()
}

// renderEstimateSummary renders the headline numbers for the current estimate.
func (a App) renderEstimateSummary(outerW int) string {
	t := theme.Active
	est := a.estimate

	monthlyCaption := "per month"
	if a.tiered {
		monthlyCaption = "first month"
	}

	cards := []struct{ Label, Value, Caption string }{
		{"Monthly", cli.FormatCost(est.MonthlyCost), monthlyCaption},
		{"Total", cli.FormatCost(est.TotalCost), "over " + cli.FormatMonths(est.Months)},
		{"Avg / Year", cli.FormatCost(est.AvgYearlyCost), fmt.Sprintf("%s avg/mo", cli.FormatCost(est.AvgMonthlyCost))},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, outerW))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	if len(est.Series) > 0 {
		vals := make([]float64, len(est.Series))
		for i, p := range est.Series {
			vals[i] = p.Cumulative
		}
		body.WriteString(components.Sparkline(vals, t.Accent))
		body.WriteString("\n")
	}
	body.WriteString(labelStyle.Render("After tax savings:  "))
	body.WriteString(valueStyle.Render(cli.FormatCost(a.savings.AdjustedTotal)))
	body.WriteString(labelStyle.Render(fmt.Sprintf("  (saves %s)", cli.FormatCost(a.savings.TotalSavings))))

	b.WriteString(components.ContentCard("Cumulative Cost", body.String(), outerW))
	return b.String()
}

// renderDataInfo renders a slim card describing where the numbers came from.
func (a App) renderDataInfo(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	src := "built-in reference data"
	if a.loadResult != nil && a.loadResult.Loaded > 0 {
		src = fmt.Sprintf("%d dataset file(s) from %s (%d rows, %d cache hits)",
			a.loadResult.Loaded, a.dataDir, a.loadResult.Rows, a.loadResult.CacheHits)
	}
	if a.loadErr != nil {
		src += "  ·  load error: " + a.loadErr.Error()
	}

	return components.ContentCard("", labelStyle.Render("Source: "+src), cw)
}
