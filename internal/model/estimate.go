package model

// MonthPoint is one month of the projection series.
type MonthPoint struct {
	Month      int     // 1-based month index
	Monthly    float64 // cost for this month
	Cumulative float64 // running total through this month
}

// CostEstimate is the derived output for one UserSelection. Recomputed on
// every input change; never stored.
type CostEstimate struct {
	MonthlyCost    float64 // flat models: constant; tiered: first-month cost
	Series         []MonthPoint
	TotalCost      float64
	AvgMonthlyCost float64
	AvgYearlyCost  float64
	Months         int
}

// BracketTotal holds the projected total for one price bracket, used for
// side-by-side comparison at identical state/care/duration.
type BracketTotal struct {
	Bracket     PriceBracket
	MonthlyCost float64
	TotalCost   float64
}

// SavingsBreakdown holds the tax-adjustment outputs for an estimate.
type SavingsBreakdown struct {
	Years          float64 // projected duration in years (months/12)
	CreditPerYear  float64 // dependent care tax credit, per year
	FSAPerYear     float64 // pre-tax FSA savings, per year
	TotalSavings   float64
	AdjustedTotal  float64 // estimate total minus savings, floored at 0
	QualifyingCap  float64 // annual expense cap the credit was computed on
	CreditRateUsed float64
}
