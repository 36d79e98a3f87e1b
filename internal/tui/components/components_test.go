package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"kidcost/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRow(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 3},
		{100, 3},
		{77, 4},
		{50, 2},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) widths sum to %d", tc.total, tc.n, sum)
		}
	}
}

func TestCardRowMatchesTallest(t *testing.T) {
	short := ContentCard("Short", "one line", 24)
	tall := ContentCard("Tall", "a\nb\nc\nd\ne", 24)

	joined := CardRow([]string{tall, short})
	got := len(strings.Split(joined, "\n"))
	want := len(strings.Split(tall, "\n"))
	if got != want {
		t.Errorf("joined row has %d lines, want %d (tallest card)", got, want)
	}
}

func TestSparklineLength(t *testing.T) {
	values := []float64{100, 200, 300, 400}
	line := Sparkline(values, lipgloss.Color("#4385be"))
	stripped := stripANSI(line)
	if got := len([]rune(stripped)); got != len(values) {
		t.Errorf("sparkline has %d cells, want %d", got, len(values))
	}
}

func TestFormatAxisLabel(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "$0.50"},
		{800, "$800"},
		{9600, "$9.6k"},
		{48000, "$48k"},
		{1500000, "$1.5M"},
	}
	for _, tc := range cases {
		if got := formatAxisLabel(tc.in); got != tc.want {
			t.Errorf("formatAxisLabel(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestChartTickStep(t *testing.T) {
	cases := []struct {
		max, want float64
	}{
		{9600, 2000},
		{48000, 5000},
		{500, 100},
		{0, 1},
	}
	for _, tc := range cases {
		if got := chartTickStep(tc.max); got != tc.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tc.max, got, tc.want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('e'); got != 0 {
		t.Errorf("TabIdxByKey('e') = %d, want 0", got)
	}
	if got := TabIdxByKey('v'); got != 3 {
		t.Errorf("TabIdxByKey('v') = %d, want 3", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
