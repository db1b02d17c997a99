// Package config loads and validates simulation configuration from YAML
// files. CLI flags override file values; both funnel into SimConfig.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/calculation"
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/strategy"
)

// SimConfig holds every configurable simulation parameter.
type SimConfig struct {
	// Core simulation parameters
	Strategy string `yaml:"strategy"`
	Years    int    `yaml:"years"`
	Paths    int    `yaml:"paths"`
	Seed     int64  `yaml:"seed"`

	// Portfolio parameters
	InitBalance float64 `yaml:"init_balance"`
	EquityPct   float64 `yaml:"equity_pct"`
	FeesBps     int     `yaml:"fees_bps"`

	// Market simulation parameters
	MarketMode string `yaml:"market_mode"`

	// Output parameters
	Output  string `yaml:"output"`
	Verbose bool   `yaml:"verbose"`

	// Tax parameters; empty means no taxes.
	FilingStatus string `yaml:"filing_status"`

	// Strategy-specific parameters
	Percent     float64 `yaml:"percent"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	Window      int     `yaml:"window"`
	InitialRate float64 `yaml:"initial_rate"`
	GuardPct    float64 `yaml:"guard_pct"`
	RaisePct    float64 `yaml:"raise_pct"`
	CutPct      float64 `yaml:"cut_pct"`
	VPWTable    string  `yaml:"vpw_table"`
}

// Default returns a config populated with the standard defaults.
func Default() *SimConfig {
	opts := strategy.DefaultOptions()
	return &SimConfig{
		Strategy:    "four_percent_rule",
		Years:       30,
		Paths:       1000,
		Seed:        42,
		InitBalance: 1_000_000.0,
		EquityPct:   0.6,
		FeesBps:     50,
		MarketMode:  string(calculation.ModeLognormal),
		Percent:     opts.Percent,
		Alpha:       opts.Alpha,
		Beta:        opts.Beta,
		Window:      opts.Window,
		InitialRate: opts.InitialRate,
		GuardPct:    opts.GuardPct,
		RaisePct:    opts.RaisePct,
		CutPct:      opts.CutPct,
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(filename string) (*SimConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration eagerly, before anything runs.
func (c *SimConfig) Validate() error {
	if c.Years < 1 {
		return fmt.Errorf("years must be at least 1, got %d", c.Years)
	}
	if c.Paths < 1 {
		return fmt.Errorf("paths must be at least 1, got %d", c.Paths)
	}
	if err := c.PortfolioParams().Validate(); err != nil {
		return err
	}
	if mode := calculation.Mode(c.MarketMode); mode != calculation.ModeLognormal && mode != calculation.ModeBootstrap {
		return fmt.Errorf("market_mode must be %q or %q, got %q",
			calculation.ModeLognormal, calculation.ModeBootstrap, c.MarketMode)
	}
	if c.FilingStatus != "" {
		status := calculation.FilingStatus(c.FilingStatus)
		if status != calculation.FilingSingle && status != calculation.FilingMarried {
			return fmt.Errorf("filing_status must be %q or %q, got %q",
				calculation.FilingSingle, calculation.FilingMarried, c.FilingStatus)
		}
	}
	if c.Percent < 0 || c.Percent > 1 {
		return fmt.Errorf("percent must be between 0 and 1, got %f", c.Percent)
	}
	return nil
}

// PortfolioParams extracts the portfolio parameters.
func (c *SimConfig) PortfolioParams() domain.PortfolioParams {
	return domain.PortfolioParams{
		InitBalance: c.InitBalance,
		EquityPct:   c.EquityPct,
		FeesBps:     c.FeesBps,
		Seed:        c.Seed,
	}
}

// StrategyOptions extracts the per-strategy tuning knobs.
func (c *SimConfig) StrategyOptions() strategy.Options {
	return strategy.Options{
		Percent:      c.Percent,
		Alpha:        c.Alpha,
		Beta:         c.Beta,
		Window:       c.Window,
		InitialRate:  c.InitialRate,
		GuardPct:     c.GuardPct,
		RaisePct:     c.RaisePct,
		CutPct:       c.CutPct,
		VPWTablePath: c.VPWTable,
	}
}

// BuildStrategy constructs the configured withdrawal strategy.
func (c *SimConfig) BuildStrategy() (strategy.Strategy, error) {
	return strategy.New(c.Strategy, c.StrategyOptions())
}

// BuildTaxEngine constructs the configured tax engine, or the no-tax
// default when filing_status is unset.
func (c *SimConfig) BuildTaxEngine() (calculation.TaxEngine, error) {
	if c.FilingStatus == "" {
		return calculation.NoTax, nil
	}
	return calculation.NewTaxEngine(calculation.FilingStatus(c.FilingStatus))
}
