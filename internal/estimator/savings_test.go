package estimator

import (
	"testing"

	"kidcost/internal/model"
)

func TestApplySavings_CreditCappedOneChild(t *testing.T) {
	// $9,600/year of expenses, cap $3,000 → credit 20% of 3,000 = $600/year.
	est := model.CostEstimate{
		TotalCost:     9600,
		AvgYearlyCost: 9600,
		Months:        12,
	}

	sv := ApplySavings(est, 1, DefaultSavingsRates())

	if !almostEqual(sv.CreditPerYear, 600) {
		t.Errorf("CreditPerYear = %.2f, want 600.00", sv.CreditPerYear)
	}
	if !almostEqual(sv.QualifyingCap, 3000) {
		t.Errorf("QualifyingCap = %.2f, want 3000.00", sv.QualifyingCap)
	}
	if !almostEqual(sv.TotalSavings, 600) {
		t.Errorf("TotalSavings = %.2f, want 600.00 over one year", sv.TotalSavings)
	}
	if !almostEqual(sv.AdjustedTotal, 9000) {
		t.Errorf("AdjustedTotal = %.2f, want 9000.00", sv.AdjustedTotal)
	}
}

func TestApplySavings_HigherCapForTwoChildren(t *testing.T) {
	est := model.CostEstimate{
		TotalCost:     9600,
		AvgYearlyCost: 9600,
		Months:        12,
	}

	sv := ApplySavings(est, 2, DefaultSavingsRates())

	if !almostEqual(sv.QualifyingCap, 6000) {
		t.Errorf("QualifyingCap = %.2f, want 6000.00", sv.QualifyingCap)
	}
	if !almostEqual(sv.CreditPerYear, 1200) {
		t.Errorf("CreditPerYear = %.2f, want 1200.00", sv.CreditPerYear)
	}
}

func TestApplySavings_UncappedBelowLimit(t *testing.T) {
	// $2,400/year is below the $3,000 cap, so the credit applies in full.
	est := model.CostEstimate{
		TotalCost:     2400,
		AvgYearlyCost: 2400,
		Months:        12,
	}

	sv := ApplySavings(est, 1, DefaultSavingsRates())

	if !almostEqual(sv.CreditPerYear, 480) {
		t.Errorf("CreditPerYear = %.2f, want 480.00 (20%% of 2400)", sv.CreditPerYear)
	}
}

func TestApplySavings_FSAValuedAtMarginalRate(t *testing.T) {
	rates := DefaultSavingsRates()
	rates.FSAContribution = 7000 // above the $5,000 limit, should clamp

	est := model.CostEstimate{
		TotalCost:     19200,
		AvgYearlyCost: 9600,
		Months:        24,
	}

	sv := ApplySavings(est, 1, rates)

	if !almostEqual(sv.FSAPerYear, 1100) {
		t.Errorf("FSAPerYear = %.2f, want 1100.00 (22%% of capped 5000)", sv.FSAPerYear)
	}
	// (600 credit + 1100 FSA) × 2 years
	if !almostEqual(sv.TotalSavings, 3400) {
		t.Errorf("TotalSavings = %.2f, want 3400.00", sv.TotalSavings)
	}
}

func TestApplySavings_AdjustedTotalFloorsAtZero(t *testing.T) {
	rates := DefaultSavingsRates()
	rates.CreditRate = 1.0
	rates.CreditCapOne = 100000

	est := model.CostEstimate{
		TotalCost:     1200,
		AvgYearlyCost: 1200,
		Months:        12,
	}

	sv := ApplySavings(est, 1, rates)
	if sv.AdjustedTotal < 0 {
		t.Errorf("AdjustedTotal = %.2f, want >= 0", sv.AdjustedTotal)
	}
}
