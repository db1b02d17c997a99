package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/calculation"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "four_percent_rule", cfg.Strategy)
	require.Equal(t, 30, cfg.Years)
	require.Equal(t, 1000, cfg.Paths)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 1_000_000.0, cfg.InitBalance)
	require.Equal(t, 0.6, cfg.EquityPct)
	require.Equal(t, 50, cfg.FeesBps)
	require.Equal(t, string(calculation.ModeLognormal), cfg.MarketMode)

	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `strategy: endowment
years: 40
paths: 250
seed: 7
init_balance: 2000000
market_mode: bootstrap
alpha: 0.6
beta: 0.4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "endowment", cfg.Strategy)
	require.Equal(t, 40, cfg.Years)
	require.Equal(t, 250, cfg.Paths)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 2_000_000.0, cfg.InitBalance)
	require.Equal(t, "bootstrap", cfg.MarketMode)
	require.Equal(t, 0.6, cfg.Alpha)
	require.Equal(t, 0.4, cfg.Beta)

	// Untouched fields keep their defaults.
	require.Equal(t, 50, cfg.FeesBps)
	require.Equal(t, 3, cfg.Window)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("years: 0\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)

	mode := filepath.Join(dir, "mode.yaml")
	require.NoError(t, os.WriteFile(mode, []byte("market_mode: gaussian\n"), 0o644))
	_, err = Load(mode)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Paths = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.EquityPct = 1.5
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.FilingStatus = "head_of_household"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.FilingStatus = "married"
	require.NoError(t, cfg.Validate())
}

func TestBuildStrategy(t *testing.T) {
	cfg := Default()
	strat, err := cfg.BuildStrategy()
	require.NoError(t, err)
	require.Equal(t, "four_percent_rule", strat.Name())

	cfg.Strategy = "constant_pct"
	cfg.Percent = 0.03
	strat, err = cfg.BuildStrategy()
	require.NoError(t, err)
	require.Equal(t, "constant_pct", strat.Name())

	cfg.Strategy = "unknown"
	_, err = cfg.BuildStrategy()
	require.Error(t, err)
}

func TestBuildTaxEngine(t *testing.T) {
	cfg := Default()

	engine, err := cfg.BuildTaxEngine()
	require.NoError(t, err)
	require.Equal(t, 0.0, engine(50_000, 1_000_000))

	cfg.FilingStatus = "single"
	engine, err = cfg.BuildTaxEngine()
	require.NoError(t, err)
	require.Greater(t, engine(50_000, 1_000_000), 0.0)
}
