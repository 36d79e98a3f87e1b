// Package config loads and saves kidcost configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"kidcost/internal/estimator"
	"kidcost/internal/model"
	"kidcost/internal/refdata"
)

// Config holds all kidcost configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Savings    SavingsConfig    `toml:"savings"`
	Brackets   BracketOverrides `toml:"brackets"`
	Overrides  CostOverrides    `toml:"overrides"`
}

// GeneralConfig holds default estimate inputs.
type GeneralConfig struct {
	State      string  `toml:"state"`
	CareType   string  `toml:"care_type"`
	Bracket    string  `toml:"price_bracket"`
	Months     int     `toml:"months"`
	Multiplier float64 `toml:"multiplier"`
	Children   int     `toml:"children"`
	DataDir    string  `toml:"data_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// SavingsConfig holds the tax-adjustment rate table. Zero values fall back
// to the documented defaults.
type SavingsConfig struct {
	CreditRate      *float64 `toml:"credit_rate,omitempty"`
	CreditCapOne    *float64 `toml:"credit_cap_one,omitempty"`
	CreditCapMany   *float64 `toml:"credit_cap_many,omitempty"`
	FSALimit        *float64 `toml:"fsa_limit,omitempty"`
	FSAContribution *float64 `toml:"fsa_contribution,omitempty"`
	MarginalRate    *float64 `toml:"marginal_rate,omitempty"`
}

// BracketOverrides allows user-defined bracket factors.
type BracketOverrides struct {
	Low     *float64 `toml:"low,omitempty"`
	Average *float64 `toml:"average,omitempty"`
	High    *float64 `toml:"high,omitempty"`
}

// CostOverrides allows per-state annual cost overrides, keyed by care type
// then state name.
type CostOverrides struct {
	CenterBased map[string]CostOverride `toml:"center_based,omitempty"`
	FamilyCare  map[string]CostOverride `toml:"family_care,omitempty"`
}

// CostOverride holds override annual costs for one state.
type CostOverride struct {
	Infant    float64 `toml:"infant"`
	Toddler   float64 `toml:"toddler"`
	Preschool float64 `toml:"preschool"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			State:      "Texas",
			CareType:   string(model.CareCenterBased),
			Bracket:    string(model.BracketAverage),
			Months:     36,
			Multiplier: 1.0,
			Children:   1,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kidcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kidcost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// SavingsRates resolves the configured rate table over the defaults.
func (c Config) SavingsRates() estimator.SavingsRates {
	rates := estimator.DefaultSavingsRates()
	if v := c.Savings.CreditRate; v != nil {
		rates.CreditRate = *v
	}
	if v := c.Savings.CreditCapOne; v != nil {
		rates.CreditCapOne = *v
	}
	if v := c.Savings.CreditCapMany; v != nil {
		rates.CreditCapMany = *v
	}
	if v := c.Savings.FSALimit; v != nil {
		rates.FSALimit = *v
	}
	if v := c.Savings.FSAContribution; v != nil {
		rates.FSAContribution = *v
	}
	if v := c.Savings.MarginalRate; v != nil {
		rates.MarginalRate = *v
	}
	return rates
}

// ApplyOverrides writes any configured bracket factors and per-state costs
// into the table. Called once at startup, before the table is shared.
func (c Config) ApplyOverrides(t *refdata.Table) {
	if v := c.Brackets.Low; v != nil && *v > 0 {
		t.SetBracketFactor(model.BracketLow, *v)
	}
	if v := c.Brackets.Average; v != nil && *v > 0 {
		t.SetBracketFactor(model.BracketAverage, *v)
	}
	if v := c.Brackets.High; v != nil && *v > 0 {
		t.SetBracketFactor(model.BracketHigh, *v)
	}

	apply := func(care model.CareType, rows map[string]CostOverride) {
		for state, o := range rows {
			t.SetCost(state, care, refdata.AgeCosts{
				Infant:    o.Infant,
				Toddler:   o.Toddler,
				Preschool: o.Preschool,
			})
		}
	}
	apply(model.CareCenterBased, c.Overrides.CenterBased)
	apply(model.CareFamilyCare, c.Overrides.FamilyCare)
}
