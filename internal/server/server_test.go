package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"kidcost/internal/estimator"
	"kidcost/internal/model"
	"kidcost/internal/refdata"
)

func testService(t *testing.T) *Service {
	t.Helper()
	table := refdata.New(map[model.CareType]map[string]refdata.AgeCosts{
		model.CareCenterBased: {
			"Texas":    {Infant: 9600, Toddler: 8400, Preschool: 7200},
			"Colorado": {Infant: 15600, Toddler: 14400, Preschool: 12000},
		},
		model.CareFamilyCare: {
			"Texas": {Infant: 8400, Toddler: 7800, Preschool: 7200},
		},
	}, nil)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(Config{Rates: estimator.DefaultSavingsRates()}, table, logger)
}

func postEstimate(t *testing.T, svc *Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func TestEstimateEndpoint(t *testing.T) {
	svc := testService(t)

	rec := postEstimate(t, svc, `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.MonthlyCost != 800 {
		t.Errorf("monthly_cost = %v, want 800", resp.MonthlyCost)
	}
	if resp.TotalCost != 9600 {
		t.Errorf("total_cost = %v, want 9600", resp.TotalCost)
	}
	if resp.AvgYearlyCost != 9600 {
		t.Errorf("avg_yearly_cost = %v, want 9600", resp.AvgYearlyCost)
	}
	if len(resp.Cumulative) != 12 {
		t.Fatalf("cumulative points = %d, want 12", len(resp.Cumulative))
	}
	if resp.Cumulative[0].Cumulative != 800 || resp.Cumulative[11].Cumulative != 9600 {
		t.Errorf("cumulative endpoints = %v, %v, want 800, 9600",
			resp.Cumulative[0].Cumulative, resp.Cumulative[11].Cumulative)
	}
	if resp.Savings != nil {
		t.Errorf("savings present without children")
	}
}

func TestEstimateDefaultsMultiplier(t *testing.T) {
	svc := testService(t)

	rec := postEstimate(t, svc, `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":6}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.MonthlyCost != 800 {
		t.Errorf("monthly_cost = %v, want 800 with multiplier defaulted to 1.0", resp.MonthlyCost)
	}
}

func TestEstimateOutOfRange(t *testing.T) {
	svc := testService(t)

	cases := []struct {
		name string
		body string
	}{
		{"zero months", `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":0}`},
		{"too many months", `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":61}`},
		{"multiplier too low", `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":12,"multiplier":0.4}`},
		{"multiplier too high", `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":12,"multiplier":2.5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postEstimate(t, svc, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestEstimateNoData(t *testing.T) {
	svc := testService(t)

	rec := postEstimate(t, svc, `{"state":"Atlantis","care_type":"center-based","price_bracket":"average","months":12}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "no data for this combination") {
		t.Errorf("body = %s, want no-data message", rec.Body.String())
	}
}

func TestEstimateInvalidBody(t *testing.T) {
	svc := testService(t)

	rec := postEstimate(t, svc, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEstimateWithSavings(t *testing.T) {
	svc := testService(t)

	rec := postEstimate(t, svc, `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":12,"children":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Savings == nil {
		t.Fatal("savings missing with children=1")
	}
	// 20% credit on the $3,000 one-child cap.
	if resp.Savings.CreditPerYear != 600 {
		t.Errorf("credit_per_year = %v, want 600", resp.Savings.CreditPerYear)
	}
	if resp.Savings.AdjustedTotal >= resp.TotalCost {
		t.Errorf("adjusted_total = %v, want below total %v", resp.Savings.AdjustedTotal, resp.TotalCost)
	}
}

func TestEstimateTiered(t *testing.T) {
	svc := testService(t)

	rec := postEstimate(t, svc, `{"state":"Texas","care_type":"center-based","price_bracket":"average","months":4,"start_age_months":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// Two infant months at $800, then toddler months at $700.
	if resp.Cumulative[0].Monthly != 800 {
		t.Errorf("month 1 = %v, want 800", resp.Cumulative[0].Monthly)
	}
	if resp.Cumulative[3].Monthly != 700 {
		t.Errorf("month 4 = %v, want 700", resp.Cumulative[3].Monthly)
	}
	if resp.TotalCost != 3000 {
		t.Errorf("total_cost = %v, want 3000", resp.TotalCost)
	}
}

func TestStatesEndpoint(t *testing.T) {
	svc := testService(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/states", nil)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		States []string `json:"states"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.States) != 2 || resp.States[0] != "Colorado" || resp.States[1] != "Texas" {
		t.Errorf("states = %v, want sorted [Colorado Texas]", resp.States)
	}
}

func TestOptionsEndpoint(t *testing.T) {
	svc := testService(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/options", nil)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		CareTypes []string `json:"care_types"`
		Brackets  []string `json:"price_brackets"`
		MonthsMin int      `json:"months_min"`
		MonthsMax int      `json:"months_max"`
		MultMin   float64  `json:"multiplier_min"`
		MultMax   float64  `json:"multiplier_max"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.CareTypes) != 2 || len(resp.Brackets) != 3 {
		t.Errorf("care_types = %v, price_brackets = %v", resp.CareTypes, resp.Brackets)
	}
	if resp.MonthsMin != 1 || resp.MonthsMax != 60 {
		t.Errorf("months bounds = %d..%d, want 1..60", resp.MonthsMin, resp.MonthsMax)
	}
	if resp.MultMin != 0.5 || resp.MultMax != 2.0 {
		t.Errorf("multiplier bounds = %v..%v, want 0.5..2.0", resp.MultMin, resp.MultMax)
	}
}

func TestHealthzEndpoint(t *testing.T) {
	svc := testService(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s, want status ok", rec.Body.String())
	}
}
