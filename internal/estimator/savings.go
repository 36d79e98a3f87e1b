package estimator

import "kidcost/internal/model"

// SavingsRates configures the tax-adjustment computation. The defaults
// follow the federal dependent care credit (20% of up to $3,000 of
// qualifying expenses for one child, $6,000 for two or more) and a
// dependent care FSA capped at $5,000, valued at a 22% marginal rate.
// All of it is configuration, not tax advice.
type SavingsRates struct {
	CreditRate      float64 // share of qualifying expenses credited per year
	CreditCapOne    float64 // annual qualifying expense cap, one child
	CreditCapMany   float64 // annual cap, two or more children
	FSALimit        float64 // annual pre-tax contribution ceiling
	FSAContribution float64 // planned annual contribution; 0 disables
	MarginalRate    float64 // marginal tax rate valuing FSA dollars
}

// DefaultSavingsRates returns the documented default rate table.
func DefaultSavingsRates() SavingsRates {
	return SavingsRates{
		CreditRate:    0.20,
		CreditCapOne:  3000,
		CreditCapMany: 6000,
		FSALimit:      5000,
		MarginalRate:  0.22,
	}
}

// ApplySavings computes the tax-credit/FSA adjustment for an estimate.
// Purely multiplicative/subtractive; the adjusted total never goes below
// zero.
func ApplySavings(est model.CostEstimate, children int, rates SavingsRates) model.SavingsBreakdown {
	if children < 1 {
		children = 1
	}
	years := float64(est.Months) / 12

	cap := rates.CreditCapOne
	if children > 1 {
		cap = rates.CreditCapMany
	}

	annualExpenses := est.AvgYearlyCost
	qualifying := annualExpenses
	if qualifying > cap {
		qualifying = cap
	}
	creditPerYear := round2(qualifying * rates.CreditRate)

	fsa := rates.FSAContribution
	if fsa > rates.FSALimit {
		fsa = rates.FSALimit
	}
	if fsa > annualExpenses {
		fsa = annualExpenses
	}
	fsaPerYear := round2(fsa * rates.MarginalRate)

	total := round2((creditPerYear + fsaPerYear) * years)
	adjusted := round2(est.TotalCost - total)
	if adjusted < 0 {
		adjusted = 0
	}

	return model.SavingsBreakdown{
		Years:          years,
		CreditPerYear:  creditPerYear,
		FSAPerYear:     fsaPerYear,
		TotalSavings:   total,
		AdjustedTotal:  adjusted,
		QualifyingCap:  cap,
		CreditRateUsed: rates.CreditRate,
	}
}
