package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{9600, "9,600"},
		{1234567, "1,234,567"},
		{-9600, "-9,600"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{9600, "$9,600"},
		{800, "$800"},
		{99.99, "$99.99"},
		{12.5, "$12.50"},
		{0, "$0.00"},
	}
	for _, tc := range cases {
		if got := FormatCost(tc.in); got != tc.want {
			t.Errorf("FormatCost(%.2f) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0 months"},
		{1, "1 month"},
		{11, "11 months"},
		{12, "1 year"},
		{13, "1 year 1 month"},
		{27, "2 years 3 months"},
		{60, "5 years"},
	}
	for _, tc := range cases {
		if got := FormatMonths(tc.in); got != tc.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(900, 800); got != "+$100" {
		t.Errorf("FormatDelta(900, 800) = %q, want +$100", got)
	}
	if got := FormatDelta(700, 800); got != "-$100" {
		t.Errorf("FormatDelta(700, 800) = %q, want -$100", got)
	}
}
