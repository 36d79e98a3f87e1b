package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kidcost/internal/estimator"
	"kidcost/internal/model"
)

// EstimateRequest is the POST /v1/estimate body.
type EstimateRequest struct {
	State        string  `json:"state"`
	CareType     string  `json:"care_type"`
	PriceBracket string  `json:"price_bracket"`
	Months       int     `json:"months"`
	Multiplier   float64 `json:"multiplier,omitempty"`
	StartAge     *int    `json:"start_age_months,omitempty"`
	Children     int     `json:"children,omitempty"`
}

// EstimateResponse is the successful estimate payload.
type EstimateResponse struct {
	MonthlyCost    float64          `json:"monthly_cost"`
	TotalCost      float64          `json:"total_cost"`
	AvgMonthlyCost float64          `json:"avg_monthly_cost"`
	AvgYearlyCost  float64          `json:"avg_yearly_cost"`
	Months         int              `json:"months"`
	Cumulative     []monthPointJSON `json:"cumulative_by_month"`
	Savings        *savingsJSON     `json:"savings,omitempty"`
}

type monthPointJSON struct {
	Month      int     `json:"month"`
	Monthly    float64 `json:"monthly"`
	Cumulative float64 `json:"cumulative"`
}

type savingsJSON struct {
	CreditPerYear float64 `json:"credit_per_year"`
	FSAPerYear    float64 `json:"fsa_per_year"`
	TotalSavings  float64 `json:"total_savings"`
	AdjustedTotal float64 `json:"adjusted_total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"started_at": s.startedAt.UTC().Format(time.RFC3339),
	})
}

func (s *Service) handleStates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"states": s.table.States(model.CareCenterBased),
	})
}

func (s *Service) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"care_types":     model.CareTypes,
		"price_brackets": model.Brackets,
		"months_min":     estimator.MinMonths,
		"months_max":     estimator.MaxMonths,
		"multiplier_min": estimator.MinMultiplier,
		"multiplier_max": estimator.MaxMultiplier,
	})
}

func (s *Service) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Multiplier == 0 {
		req.Multiplier = 1.0
	}

	sel := model.UserSelection{
		State:      req.State,
		CareType:   model.CareType(req.CareType),
		Bracket:    model.PriceBracket(req.PriceBracket),
		Multiplier: req.Multiplier,
		Months:     req.Months,
		Children:   req.Children,
	}

	var est model.CostEstimate
	var err error
	if req.StartAge != nil {
		est, err = estimator.EstimateAges(s.table, sel, *req.StartAge)
	} else {
		est, err = estimator.Estimate(s.table, sel)
	}
	if err != nil {
		s.writeEstimateError(w, err)
		return
	}

	resp := EstimateResponse{
		MonthlyCost:    est.MonthlyCost,
		TotalCost:      est.TotalCost,
		AvgMonthlyCost: est.AvgMonthlyCost,
		AvgYearlyCost:  est.AvgYearlyCost,
		Months:         est.Months,
		Cumulative:     make([]monthPointJSON, len(est.Series)),
	}
	for i, p := range est.Series {
		resp.Cumulative[i] = monthPointJSON{Month: p.Month, Monthly: p.Monthly, Cumulative: p.Cumulative}
	}

	if req.Children > 0 {
		sav := estimator.ApplySavings(est, req.Children, s.cfg.Rates)
		resp.Savings = &savingsJSON{
			CreditPerYear: sav.CreditPerYear,
			FSAPerYear:    sav.FSAPerYear,
			TotalSavings:  sav.TotalSavings,
			AdjustedTotal: sav.AdjustedTotal,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) writeEstimateError(w http.ResponseWriter, err error) {
	var rangeErr *estimator.RangeError
	switch {
	case errors.As(err, &rangeErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: rangeErr.Error()})
	case errors.Is(err, estimator.ErrNoData):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no data for this combination"})
	default:
		s.logger.WithError(err).Error("estimate failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
