package estimator

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"kidcost/internal/model"
	"kidcost/internal/refdata"
)

// fixtureTable returns a table where Texas center-based average care costs
// exactly $800/month ($9,600/year) for every age group.
func fixtureTable() *refdata.Table {
	return refdata.New(map[model.CareType]map[string]refdata.AgeCosts{
		model.CareCenterBased: {
			"Texas": {Infant: 9600, Toddler: 9600, Preschool: 9600},
		},
	}, map[model.PriceBracket]float64{
		model.BracketLow:     0.80,
		model.BracketAverage: 1.00,
		model.BracketHigh:    1.25,
	})
}

// tieredTable returns a table with distinct per-age annual costs so tier
// transitions are visible: infant $1,200/mo, toddler $900/mo, preschool $600/mo.
func tieredTable() *refdata.Table {
	return refdata.New(map[model.CareType]map[string]refdata.AgeCosts{
		model.CareCenterBased: {
			"Texas": {Infant: 14400, Toddler: 10800, Preschool: 7200},
		},
	}, nil)
}

func texasSelection(months int) model.UserSelection {
	return model.UserSelection{
		State:      "Texas",
		CareType:   model.CareCenterBased,
		Bracket:    model.BracketAverage,
		Multiplier: 1.0,
		Months:     months,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestEstimate_TexasTwelveMonths(t *testing.T) {
	est, err := Estimate(fixtureTable(), texasSelection(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(est.MonthlyCost, 800) {
		t.Errorf("MonthlyCost = %.2f, want 800.00", est.MonthlyCost)
	}
	if !almostEqual(est.TotalCost, 9600) {
		t.Errorf("TotalCost = %.2f, want 9600.00", est.TotalCost)
	}
	if !almostEqual(est.AvgYearlyCost, 9600) {
		t.Errorf("AvgYearlyCost = %.2f, want 9600.00", est.AvgYearlyCost)
	}
	if !almostEqual(est.AvgMonthlyCost, 800) {
		t.Errorf("AvgMonthlyCost = %.2f, want 800.00", est.AvgMonthlyCost)
	}
	if len(est.Series) != 12 {
		t.Fatalf("len(Series) = %d, want 12", len(est.Series))
	}
	if !almostEqual(est.Series[0].Cumulative, 800) {
		t.Errorf("Series[0].Cumulative = %.2f, want 800.00", est.Series[0].Cumulative)
	}
}

func TestEstimate_CumulativeSeries(t *testing.T) {
	sel := texasSelection(35)
	sel.Multiplier = 1.3

	est, err := Estimate(fixtureTable(), sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := 0.0
	for i, p := range est.Series {
		if p.Month != i+1 {
			t.Fatalf("Series[%d].Month = %d, want %d", i, p.Month, i+1)
		}
		if !almostEqual(p.Cumulative, prev+p.Monthly) {
			t.Fatalf("Series[%d].Cumulative = %.2f, want %.2f", i, p.Cumulative, prev+p.Monthly)
		}
		if p.Cumulative <= prev {
			t.Fatalf("cumulative not strictly increasing at month %d", p.Month)
		}
		prev = p.Cumulative
	}

	last := est.Series[len(est.Series)-1].Cumulative
	if !almostEqual(est.TotalCost, last) {
		t.Errorf("TotalCost = %.2f, want last cumulative %.2f", est.TotalCost, last)
	}
	if !almostEqual(est.TotalCost, est.MonthlyCost*float64(sel.Months)) {
		t.Errorf("TotalCost = %.2f, want monthly×months %.2f", est.TotalCost, est.MonthlyCost*float64(sel.Months))
	}
}

func TestEstimate_SingleMonth(t *testing.T) {
	est, err := Estimate(fixtureTable(), texasSelection(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(est.Series) != 1 {
		t.Fatalf("len(Series) = %d, want 1", len(est.Series))
	}
	if !almostEqual(est.Series[0].Cumulative, est.MonthlyCost) {
		t.Errorf("single-month cumulative = %.2f, want monthly %.2f", est.Series[0].Cumulative, est.MonthlyCost)
	}
	if !almostEqual(est.TotalCost, est.MonthlyCost) {
		t.Errorf("TotalCost = %.2f, want monthly %.2f", est.TotalCost, est.MonthlyCost)
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	table := fixtureTable()
	sel := texasSelection(24)
	sel.Multiplier = 1.7

	first, err := Estimate(table, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Estimate(table, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Estimate calls with identical inputs differ")
	}
}

func TestEstimate_InputBounds(t *testing.T) {
	table := fixtureTable()

	cases := []struct {
		name  string
		mod   func(*model.UserSelection)
		field string
	}{
		{"months too low", func(s *model.UserSelection) { s.Months = 0 }, "months"},
		{"months too high", func(s *model.UserSelection) { s.Months = 61 }, "months"},
		{"multiplier too low", func(s *model.UserSelection) { s.Multiplier = 0.49 }, "multiplier"},
		{"multiplier too high", func(s *model.UserSelection) { s.Multiplier = 2.01 }, "multiplier"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := texasSelection(12)
			tc.mod(&sel)

			_, err := Estimate(table, sel)
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("error = %v, want RangeError", err)
			}
			if re.Field != tc.field {
				t.Errorf("RangeError.Field = %q, want %q", re.Field, tc.field)
			}
		})
	}
}

func TestEstimate_BoundaryValuesAccepted(t *testing.T) {
	table := fixtureTable()

	for _, months := range []int{MinMonths, MaxMonths} {
		for _, mult := range []float64{MinMultiplier, MaxMultiplier} {
			sel := texasSelection(months)
			sel.Multiplier = mult
			if _, err := Estimate(table, sel); err != nil {
				t.Errorf("Estimate(months=%d, mult=%.1f) error: %v", months, mult, err)
			}
		}
	}
}

func TestEstimate_MissingCombination(t *testing.T) {
	table := fixtureTable()

	sel := texasSelection(12)
	sel.State = "Atlantis"
	est, err := Estimate(table, sel)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
	if len(est.Series) != 0 || est.TotalCost != 0 {
		t.Error("missing combination produced a partial estimate")
	}

	sel = texasSelection(12)
	sel.CareType = model.CareFamilyCare
	if _, err := Estimate(table, sel); !errors.Is(err, ErrNoData) {
		t.Fatalf("missing care type: error = %v, want ErrNoData", err)
	}
}

func TestEstimate_BracketFactors(t *testing.T) {
	table := fixtureTable()

	low := texasSelection(12)
	low.Bracket = model.BracketLow
	lowEst, err := Estimate(table, low)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(lowEst.MonthlyCost, 640) {
		t.Errorf("low bracket monthly = %.2f, want 640.00 (800 × 0.8)", lowEst.MonthlyCost)
	}

	high := texasSelection(12)
	high.Bracket = model.BracketHigh
	highEst, err := Estimate(table, high)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(highEst.MonthlyCost, 1000) {
		t.Errorf("high bracket monthly = %.2f, want 1000.00 (800 × 1.25)", highEst.MonthlyCost)
	}
}

func TestEstimateAges_TierTransition(t *testing.T) {
	// Start at 10 months: months 1-2 infant ($1,200), months 3+ toddler ($900).
	est, err := EstimateAges(tieredTable(), texasSelection(4), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{1200, 1200, 900, 900}
	for i, w := range want {
		if !almostEqual(est.Series[i].Monthly, w) {
			t.Errorf("Series[%d].Monthly = %.2f, want %.2f", i, est.Series[i].Monthly, w)
		}
	}
	if !almostEqual(est.TotalCost, 4200) {
		t.Errorf("TotalCost = %.2f, want 4200.00", est.TotalCost)
	}
	if !almostEqual(est.MonthlyCost, 1200) {
		t.Errorf("MonthlyCost = %.2f, want first-month 1200.00", est.MonthlyCost)
	}
}

func TestEstimateAges_StartAgeBounds(t *testing.T) {
	table := tieredTable()

	if _, err := EstimateAges(table, texasSelection(12), -1); err == nil {
		t.Error("negative start age accepted")
	}
	if _, err := EstimateAges(table, texasSelection(12), MaxStartAge+1); err == nil {
		t.Error("start age beyond maximum accepted")
	}
	if _, err := EstimateAges(table, texasSelection(12), MaxStartAge); err != nil {
		t.Errorf("start age at maximum rejected: %v", err)
	}
}

func TestCompareBrackets_Ordering(t *testing.T) {
	totals, err := CompareBrackets(fixtureTable(), texasSelection(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 3 {
		t.Fatalf("len(totals) = %d, want 3", len(totals))
	}
	if totals[0].Bracket != model.BracketLow || totals[2].Bracket != model.BracketHigh {
		t.Errorf("bracket order = %v, want low..high", []model.PriceBracket{totals[0].Bracket, totals[1].Bracket, totals[2].Bracket})
	}
	if totals[0].TotalCost >= totals[1].TotalCost || totals[1].TotalCost >= totals[2].TotalCost {
		t.Error("totals not increasing across brackets")
	}
}
