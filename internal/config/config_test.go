package config

import (
	"math"
	"testing"

	"kidcost/internal/model"
	"kidcost/internal/refdata"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.State = "Vermont"
	cfg.General.Months = 24
	rate := 0.35
	cfg.Savings.CreditRate = &rate

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.State != "Vermont" {
		t.Errorf("State = %q, want Vermont", loaded.General.State)
	}
	if loaded.General.Months != 24 {
		t.Errorf("Months = %d, want 24", loaded.General.Months)
	}
	if loaded.Savings.CreditRate == nil || *loaded.Savings.CreditRate != 0.35 {
		t.Error("CreditRate override lost in roundtrip")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.State != "Texas" || cfg.General.Months != 36 {
		t.Errorf("defaults = %s/%d, want Texas/36", cfg.General.State, cfg.General.Months)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSavingsRates_PointerOverrides(t *testing.T) {
	cfg := DefaultConfig()

	rates := cfg.SavingsRates()
	if rates.CreditRate != 0.20 || rates.CreditCapOne != 3000 || rates.CreditCapMany != 6000 {
		t.Errorf("default rates = %+v", rates)
	}

	rate := 0.5
	fsa := 4000.0
	cfg.Savings.CreditRate = &rate
	cfg.Savings.FSAContribution = &fsa

	rates = cfg.SavingsRates()
	if rates.CreditRate != 0.5 {
		t.Errorf("CreditRate = %.2f, want 0.50", rates.CreditRate)
	}
	if rates.FSAContribution != 4000 {
		t.Errorf("FSAContribution = %.0f, want 4000", rates.FSAContribution)
	}
	// Untouched fields keep defaults
	if rates.FSALimit != 5000 {
		t.Errorf("FSALimit = %.0f, want 5000", rates.FSALimit)
	}
}

func TestApplyOverrides(t *testing.T) {
	factor := 1.4
	cfg := DefaultConfig()
	cfg.Brackets.High = &factor
	cfg.Overrides.CenterBased = map[string]CostOverride{
		"Texas": {Infant: 12000, Toddler: 11000, Preschool: 10000},
	}

	table := refdata.Default()
	cfg.ApplyOverrides(table)

	f, _ := table.BracketFactor(model.BracketHigh)
	if math.Abs(f-1.4) > 1e-9 {
		t.Errorf("high factor = %.2f, want 1.40", f)
	}

	costs, ok := table.AnnualCosts("Texas", model.CareCenterBased)
	if !ok || costs.Infant != 12000 {
		t.Errorf("Texas infant = %.0f, want 12000 override", costs.Infant)
	}

	// Family care untouched
	fam, ok := table.AnnualCosts("Texas", model.CareFamilyCare)
	if !ok || fam.Infant == 12000 {
		t.Error("override leaked into family-care rows")
	}
}
