// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCost formats a USD amount. Whole dollars with separators above
// $100, cents below.
func FormatCost(cost float64) string {
	if cost >= 100 || cost <= -100 {
		return "$" + FormatNumber(int64(math.Round(cost)))
	}
	return fmt.Sprintf("$%.2f", cost)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDelta formats a cost delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatCost(delta)
	}
	return "-" + FormatCost(-delta)
}

// FormatMonths renders a month count as years and months.
// e.g., 1 -> "1 month", 12 -> "1 year", 27 -> "2 years 3 months"
func FormatMonths(n int) string {
	if n <= 0 {
		return "0 months"
	}

	years := n / 12
	months := n % 12

	var parts []string
	switch years {
	case 0:
	case 1:
		parts = append(parts, "1 year")
	default:
		parts = append(parts, fmt.Sprintf("%d years", years))
	}
	switch months {
	case 0:
		if years == 0 {
			parts = append(parts, "0 months")
		}
	case 1:
		parts = append(parts, "1 month")
	default:
		parts = append(parts, fmt.Sprintf("%d months", months))
	}

	return strings.Join(parts, " ")
}
