package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default starting point for simulations, configurable on the ledger.
const (
	DefaultStartYear = 2024
	DefaultStartAge  = 65
)

// PortfolioParams holds the immutable portfolio configuration for a run.
// Monetary fields are in nominal dollars.
type PortfolioParams struct {
	InitBalance float64 `json:"init_balance" yaml:"init_balance"`
	EquityPct   float64 `json:"equity_pct" yaml:"equity_pct"`
	FeesBps     int     `json:"fees_bps" yaml:"fees_bps"`
	Seed        int64   `json:"seed" yaml:"seed"`
}

// Validate checks the portfolio parameters
func (p PortfolioParams) Validate() error {
	if p.InitBalance <= 0 {
		return fmt.Errorf("init_balance must be positive, got %f", p.InitBalance)
	}
	if p.EquityPct < 0 || p.EquityPct > 1 {
		return fmt.Errorf("equity_pct must be between 0 and 1, got %f", p.EquityPct)
	}
	if p.FeesBps < 0 {
		return fmt.Errorf("fees_bps cannot be negative, got %d", p.FeesBps)
	}
	return nil
}

// FeeFactor returns the annual multiplier applied for fees, e.g. 50 bps -> 0.995.
func (p PortfolioParams) FeeFactor() float64 {
	return 1.0 - float64(p.FeesBps)/10000.0
}

// LoadPortfolioParams loads and validates portfolio parameters from a YAML file
func LoadPortfolioParams(filename string) (*PortfolioParams, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params PortfolioParams
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("portfolio parameter validation failed: %w", err)
	}

	return &params, nil
}

// YearState is the financial state snapshot for a single simulated year.
// Instances are created by the ledger at the end of each year's transition
// and never mutated afterwards. Withdrawal is nil until the year's
// withdrawal has been recorded, so strategies probed with a bare state
// cannot observe a half-built value.
type YearState struct {
	Year       int      `json:"year" yaml:"year"`
	Age        int      `json:"age" yaml:"age"`
	Balance    float64  `json:"balance" yaml:"balance"`
	Inflation  float64  `json:"inflation" yaml:"inflation"`
	Withdrawal *float64 `json:"withdrawal_nominal,omitempty" yaml:"withdrawal_nominal,omitempty"`
}

// Validate checks the year state fields
func (s YearState) Validate() error {
	if s.Age < 0 {
		return fmt.Errorf("age cannot be negative, got %d", s.Age)
	}
	return nil
}
