// Package estimator computes childcare cost projections from a reference
// table and one user selection. Every function is pure: identical inputs
// produce identical outputs, and nothing here mutates shared state.
package estimator

import (
	"errors"
	"fmt"
	"math"

	"kidcost/internal/model"
	"kidcost/internal/refdata"
)

// Input bounds enforced on every estimate.
const (
	MinMonths     = 1
	MaxMonths     = 60
	MinMultiplier = 0.5
	MaxMultiplier = 2.0
	MaxStartAge   = 72 // months; tiered projections start no later than this
)

// ErrNoData signals that no reference entry exists for the selected
// state/care-type/bracket combination. No partial estimate accompanies it.
var ErrNoData = errors.New("no reference data for this combination")

// RangeError reports an input outside its configured bounds.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// round2 rounds to whole cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validate(sel model.UserSelection) error {
	if sel.Months < MinMonths || sel.Months > MaxMonths {
		return &RangeError{Field: "months", Value: float64(sel.Months), Min: MinMonths, Max: MaxMonths}
	}
	if sel.Multiplier < MinMultiplier || sel.Multiplier > MaxMultiplier {
		return &RangeError{Field: "multiplier", Value: sel.Multiplier, Min: MinMultiplier, Max: MaxMultiplier}
	}
	return nil
}

// Estimate projects a constant monthly cost over the selected duration.
// The selection's age group is fixed at infant care; use EstimateAges for
// the age-tiered model.
func Estimate(table *refdata.Table, sel model.UserSelection) (model.CostEstimate, error) {
	return estimateWithGroup(table, sel, model.AgeInfant)
}

// EstimateForGroup is Estimate with an explicit age group.
func EstimateForGroup(table *refdata.Table, sel model.UserSelection, group model.AgeGroup) (model.CostEstimate, error) {
	return estimateWithGroup(table, sel, group)
}

func estimateWithGroup(table *refdata.Table, sel model.UserSelection, group model.AgeGroup) (model.CostEstimate, error) {
	if err := validate(sel); err != nil {
		return model.CostEstimate{}, err
	}

	base, ok := table.MonthlyBase(sel.State, sel.CareType, sel.Bracket, group)
	if !ok {
		return model.CostEstimate{}, fmt.Errorf("%s/%s/%s: %w",
			sel.State, sel.CareType, sel.Bracket, ErrNoData)
	}

	monthly := round2(base * sel.Multiplier)
	series := make([]model.MonthPoint, sel.Months)
	cumulative := 0.0
	for i := range series {
		cumulative = round2(cumulative + monthly)
		series[i] = model.MonthPoint{Month: i + 1, Monthly: monthly, Cumulative: cumulative}
	}

	return summarize(monthly, series), nil
}

// EstimateAges projects costs with the monthly rate following the child's
// age: infant under 12 months, toddler through 47, preschool from 48.
// startAgeMonths is the child's age when care begins.
func EstimateAges(table *refdata.Table, sel model.UserSelection, startAgeMonths int) (model.CostEstimate, error) {
	if err := validate(sel); err != nil {
		return model.CostEstimate{}, err
	}
	if startAgeMonths < 0 || startAgeMonths > MaxStartAge {
		return model.CostEstimate{}, &RangeError{Field: "start age", Value: float64(startAgeMonths), Min: 0, Max: MaxStartAge}
	}

	series := make([]model.MonthPoint, sel.Months)
	cumulative := 0.0
	for i := range series {
		group := model.AgeGroupFor(startAgeMonths + i)
		base, ok := table.MonthlyBase(sel.State, sel.CareType, sel.Bracket, group)
		if !ok {
			return model.CostEstimate{}, fmt.Errorf("%s/%s/%s: %w",
				sel.State, sel.CareType, sel.Bracket, ErrNoData)
		}
		monthly := round2(base * sel.Multiplier)
		cumulative = round2(cumulative + monthly)
		series[i] = model.MonthPoint{Month: i + 1, Monthly: monthly, Cumulative: cumulative}
	}

	return summarize(series[0].Monthly, series), nil
}

func summarize(firstMonthly float64, series []model.MonthPoint) model.CostEstimate {
	months := len(series)
	total := series[months-1].Cumulative
	years := float64(months) / 12

	return model.CostEstimate{
		MonthlyCost:    firstMonthly,
		Series:         series,
		TotalCost:      total,
		AvgMonthlyCost: round2(total / float64(months)),
		AvgYearlyCost:  round2(total / years),
		Months:         months,
	}
}

// CompareBrackets computes totals for every price bracket at the same
// state, care type, and duration, cheapest bracket first.
func CompareBrackets(table *refdata.Table, sel model.UserSelection) ([]model.BracketTotal, error) {
	totals := make([]model.BracketTotal, 0, len(model.Brackets))
	for _, bracket := range model.Brackets {
		bsel := sel
		bsel.Bracket = bracket
		est, err := Estimate(table, bsel)
		if err != nil {
			return nil, err
		}
		totals = append(totals, model.BracketTotal{
			Bracket:     bracket,
			MonthlyCost: est.MonthlyCost,
			TotalCost:   est.TotalCost,
		})
	}
	return totals, nil
}
