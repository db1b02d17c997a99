package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

func testParams() domain.PortfolioParams {
	return domain.PortfolioParams{
		InitBalance: 1_000_000,
		EquityPct:   0.6,
		FeesBps:     50,
		Seed:        42,
	}
}

func stateWith(balance float64) *domain.YearState {
	return &domain.YearState{Year: 2024, Age: 65, Balance: balance}
}

func TestDummy(t *testing.T) {
	d := NewDummy()

	got, err := d.CalculateWithdrawal(nil, testParams())
	require.NoError(t, err)
	require.Equal(t, 0.0, got)

	got, err = d.CalculateWithdrawal(stateWith(500_000), testParams())
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestFourPercentRule(t *testing.T) {
	f := NewFourPercentRule()

	// First-year probe: 4% of the initial balance.
	got, err := f.CalculateWithdrawal(nil, testParams())
	require.NoError(t, err)
	require.Equal(t, 40_000.0, got)

	// Inflation-adjusted: 40,000 * 1.03 = 41,200 exactly.
	state := &domain.YearState{Year: 2025, Age: 66, Balance: 900_000, Inflation: 0.03}
	got, err = f.CalculateWithdrawal(state, testParams())
	require.NoError(t, err)
	require.Equal(t, 41_200.0, got)

	// The current balance is ignored entirely.
	state.Balance = 1
	got, err = f.CalculateWithdrawal(state, testParams())
	require.NoError(t, err)
	require.Equal(t, 41_200.0, got)
}

func TestConstantPercentage(t *testing.T) {
	_, err := NewConstantPercentage(-0.01)
	require.Error(t, err)
	_, err = NewConstantPercentage(1.01)
	require.Error(t, err)

	c, err := NewConstantPercentage(0.05)
	require.NoError(t, err)

	got, err := c.CalculateWithdrawal(nil, testParams())
	require.NoError(t, err)
	require.Equal(t, 50_000.0, got)

	got, err = c.CalculateWithdrawal(stateWith(800_000), testParams())
	require.NoError(t, err)
	require.Equal(t, 40_000.0, got)
}

// All strategies must return a finite, non-negative withdrawal for probe
// and degenerate states.
func TestWithdrawalsFiniteNonNegative(t *testing.T) {
	strategies := []Strategy{
		NewDummy(),
		NewFourPercentRule(),
		mustConstant(t, 0.05),
		mustEndowment(t, 0.7, 0.3, 3),
		mustGuytonKlinger(t),
		NewVPW(),
	}

	states := []*domain.YearState{
		nil,
		stateWith(0),
		stateWith(1_000_000),
		{Year: 2050, Age: 120, Balance: 42.5},
	}

	for _, s := range strategies {
		for _, state := range states {
			got, err := s.CalculateWithdrawal(state, testParams())
			require.NoError(t, err, "strategy %s", s.Name())
			require.False(t, math.IsNaN(got) || math.IsInf(got, 0), "strategy %s returned non-finite value", s.Name())
			require.GreaterOrEqual(t, got, 0.0, "strategy %s", s.Name())
		}
	}
}

func mustConstant(t *testing.T, pct float64) *ConstantPercentage {
	t.Helper()
	c, err := NewConstantPercentage(pct)
	require.NoError(t, err)
	return c
}

func mustEndowment(t *testing.T, alpha, beta float64, window int) *Endowment {
	t.Helper()
	e, err := NewEndowment(alpha, beta, window)
	require.NoError(t, err)
	return e
}

func mustGuytonKlinger(t *testing.T) *GuytonKlinger {
	t.Helper()
	g, err := NewGuytonKlinger(0.05, 0.20, 0.10, 0.10)
	require.NoError(t, err)
	return g
}

func TestFactory(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name, DefaultOptions())
		require.NoError(t, err, "strategy %s", name)
		require.Equal(t, name, s.Name())
	}

	_, err := New("no_such_strategy", DefaultOptions())
	require.Error(t, err)
}

func TestFactoryInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Alpha = 0.9 // alpha+beta != 1
	_, err := New("endowment", opts)
	require.Error(t, err)

	opts = DefaultOptions()
	opts.Percent = 1.5
	_, err = New("constant_pct", opts)
	require.Error(t, err)

	opts = DefaultOptions()
	opts.InitialRate = 0
	_, err = New("guyton_klinger", opts)
	require.Error(t, err)
}
