// Package refdata holds the static state-average childcare cost table and
// the bracket factor table the estimator resolves base costs through.
package refdata

import (
	"sort"

	"kidcost/internal/model"
)

// AgeCosts holds annual tuition in USD for each age group.
type AgeCosts struct {
	Infant    float64
	Toddler   float64
	Preschool float64
}

// For returns the annual cost for an age group.
func (a AgeCosts) For(group model.AgeGroup) float64 {
	switch group {
	case model.AgeInfant:
		return a.Infant
	case model.AgeToddler:
		return a.Toddler
	case model.AgePreschool:
		return a.Preschool
	default:
		return 0
	}
}

// DefaultBracketFactors maps price brackets to multipliers on the state
// average. These mirror the cost-expectation tiers users pick from.
var DefaultBracketFactors = map[model.PriceBracket]float64{
	model.BracketLow:     0.80,
	model.BracketAverage: 1.00,
	model.BracketHigh:    1.25,
}

// Table maps (care type, state) to annual age-group costs, with a bracket
// factor table. Built once at startup and treated as immutable afterwards.
type Table struct {
	costs   map[model.CareType]map[string]AgeCosts
	factors map[model.PriceBracket]float64
}

// New builds a table from explicit cost data and bracket factors.
func New(costs map[model.CareType]map[string]AgeCosts, factors map[model.PriceBracket]float64) *Table {
	if factors == nil {
		factors = DefaultBracketFactors
	}
	return &Table{costs: costs, factors: factors}
}

// Default returns a table backed by the built-in state averages.
func Default() *Table {
	costs := make(map[model.CareType]map[string]AgeCosts, len(defaultCosts))
	for care, states := range defaultCosts {
		rows := make(map[string]AgeCosts, len(states))
		for state, ac := range states {
			rows[state] = ac
		}
		costs[care] = rows
	}
	factors := make(map[model.PriceBracket]float64, len(DefaultBracketFactors))
	for b, f := range DefaultBracketFactors {
		factors[b] = f
	}
	return &Table{costs: costs, factors: factors}
}

// States returns all states present for the care type, sorted.
func (t *Table) States(care model.CareType) []string {
	rows := t.costs[care]
	states := make([]string, 0, len(rows))
	for s := range rows {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// AnnualCosts returns the raw annual age-group costs for a state.
func (t *Table) AnnualCosts(state string, care model.CareType) (AgeCosts, bool) {
	rows, ok := t.costs[care]
	if !ok {
		return AgeCosts{}, false
	}
	ac, ok := rows[state]
	return ac, ok
}

// BracketFactor returns the multiplier for a price bracket.
func (t *Table) BracketFactor(bracket model.PriceBracket) (float64, bool) {
	f, ok := t.factors[bracket]
	return f, ok
}

// MonthlyBase returns the monthly base cost for the combination, already
// scaled by the bracket factor. The second return is false when any part
// of the combination has no reference entry.
func (t *Table) MonthlyBase(state string, care model.CareType, bracket model.PriceBracket, group model.AgeGroup) (float64, bool) {
	ac, ok := t.AnnualCosts(state, care)
	if !ok {
		return 0, false
	}
	factor, ok := t.factors[bracket]
	if !ok {
		return 0, false
	}
	annual := ac.For(group)
	if annual <= 0 {
		return 0, false
	}
	return annual / 12 * factor, true
}

// SetRows replaces all rows for one care type. Used by dataset loading
// before the table is shared; not safe once handed to the estimator.
func (t *Table) SetRows(care model.CareType, rows map[string]AgeCosts) {
	t.costs[care] = rows
}

// SetCost overrides a single (state, care) cell.
func (t *Table) SetCost(state string, care model.CareType, ac AgeCosts) {
	rows, ok := t.costs[care]
	if !ok {
		rows = make(map[string]AgeCosts)
		t.costs[care] = rows
	}
	rows[state] = ac
}

// SetBracketFactor overrides one bracket multiplier.
func (t *Table) SetBracketFactor(bracket model.PriceBracket, factor float64) {
	t.factors[bracket] = factor
}
