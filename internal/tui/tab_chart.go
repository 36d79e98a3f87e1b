package tui

import (
	"fmt"
	"strconv"
	"strings"

	"kidcost/internal/cli"
	"kidcost/internal/tui/components"
	"kidcost/internal/tui/theme"
)

// chartMonthLabels builds X-axis labels for a month series: year boundaries
// get "1y"/"2y" markers, everything else the month number.
func chartMonthLabels(n int) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		month := i + 1
		if month%12 == 0 {
			labels[i] = strconv.Itoa(month/12) + "y"
		} else {
			labels[i] = strconv.Itoa(month)
		}
	}
	return labels
}

func (a App) renderChartTab(cw, contentH int) string {
	t := theme.Active

	if a.estErr != nil {
		return a.renderEstimateError(cw)
	}

	est := a.estimate
	var b strings.Builder

	labels := chartMonthLabels(len(est.Series))

	cumVals := make([]float64, len(est.Series))
	monthVals := make([]float64, len(est.Series))
	for i, p := range est.Series {
		cumVals[i] = p.Cumulative
		monthVals[i] = p.Monthly
	}

	// Split vertical space between the two charts, cumulative first.
	chartH := (contentH - 10) / 2
	if chartH < 6 {
		chartH = 6
	}

	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Cumulative Cost (%s, total %s)", cli.FormatMonths(est.Months), cli.FormatCost(est.TotalCost)),
		components.BarChart(cumVals, labels, t.Blue, innerW, chartH),
		cw,
	))
	b.WriteString("\n")

	monthTitle := fmt.Sprintf("Monthly Cost (%s/mo)", cli.FormatCost(est.MonthlyCost))
	if a.tiered {
		monthTitle = "Monthly Cost (age-tiered)"
	}
	b.WriteString(components.ContentCard(
		monthTitle,
		components.BarChart(monthVals, labels, t.Accent, innerW, chartH),
		cw,
	))

	return b.String()
}
