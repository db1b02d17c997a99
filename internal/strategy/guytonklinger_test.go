package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

func TestNewGuytonKlingerValidation(t *testing.T) {
	cases := [][4]float64{
		{0, 0.2, 0.1, 0.1},
		{1, 0.2, 0.1, 0.1},
		{0.05, 0, 0.1, 0.1},
		{0.05, 0.2, 1, 0.1},
		{0.05, 0.2, 0.1, 0},
	}
	for _, c := range cases {
		_, err := NewGuytonKlinger(c[0], c[1], c[2], c[3])
		require.Error(t, err)
	}
}

func TestGuytonKlingerFirstCall(t *testing.T) {
	g := mustGuytonKlinger(t)

	// Probe without state fixes the base: 1,000,000 * 0.05.
	got, err := g.CalculateWithdrawal(nil, testParams())
	require.NoError(t, err)
	require.Equal(t, 50_000.0, got)
}

// Within the guardrails the withdrawal is the inflation-adjusted base.
func TestGuytonKlingerInflationCompounding(t *testing.T) {
	g := mustGuytonKlinger(t)
	params := testParams()

	state := &domain.YearState{Year: 2024, Age: 65, Balance: 1_000_000, Inflation: 0.03}
	got, err := g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	// rate 0.0515 is inside [0.04, 0.06]: no adjustment.
	require.InDelta(t, 51_500.0, got, 1e-9)

	// Consecutive year: inflation compounds.
	state = &domain.YearState{Year: 2025, Age: 66, Balance: 1_000_000, Inflation: 0.03}
	got, err = g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	require.InDelta(t, 50_000.0*1.03*1.03, got, 1e-9)
}

// Non-consecutive years freeze the cumulative inflation multiplier. This
// is intentional behavior, not a bug.
func TestGuytonKlingerNonConsecutiveYearFreeze(t *testing.T) {
	g := mustGuytonKlinger(t)
	params := testParams()

	state := &domain.YearState{Year: 2024, Age: 65, Balance: 1_000_000, Inflation: 0.03}
	got, err := g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	require.InDelta(t, 51_500.0, got, 1e-9)

	// Skipping 2025 entirely: multiplier stays at 1.03.
	state = &domain.YearState{Year: 2026, Age: 67, Balance: 1_000_000, Inflation: 0.03}
	got, err = g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	require.InDelta(t, 51_500.0, got, 1e-9)
}

// A high withdrawal rate against a shrunken portfolio triggers a cut, and
// the cut persists as the new base.
func TestGuytonKlingerUpperGuardrailCut(t *testing.T) {
	g := mustGuytonKlinger(t)
	params := testParams()

	// 50,000 / 500,000 = 0.10 > 0.06 and balance <= 120% of initial.
	state := &domain.YearState{Year: 2024, Age: 65, Balance: 500_000}
	got, err := g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	require.InDelta(t, 45_000.0, got, 1e-9)

	// The cut base carries forward: 45,000 / 500,000 = 0.09 still above
	// the guardrail, so the next year cuts again.
	state = &domain.YearState{Year: 2025, Age: 66, Balance: 500_000}
	got, err = g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	require.InDelta(t, 40_500.0, got, 1e-9)
}

// A low withdrawal rate against a grown portfolio triggers a raise.
func TestGuytonKlingerLowerGuardrailRaise(t *testing.T) {
	g := mustGuytonKlinger(t)
	params := testParams()

	// 50,000 / 2,000,000 = 0.025 < 0.04 and balance >= 80% of initial.
	state := &domain.YearState{Year: 2024, Age: 65, Balance: 2_000_000}
	got, err := g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	require.InDelta(t, 55_000.0, got, 1e-9)
}

// No cut when the portfolio sits above 120% of the initial balance even if
// the rate breaches the upper guardrail.
func TestGuytonKlingerProsperityException(t *testing.T) {
	g, err := NewGuytonKlinger(0.05, 0.20, 0.10, 0.10)
	require.NoError(t, err)

	// Small initial balance so a high rate can coincide with a large
	// current balance: base = 100,000 * 0.05 = 5,000.
	params := domain.PortfolioParams{InitBalance: 100_000, EquityPct: 0.6, FeesBps: 50, Seed: 42}

	// 5,000 / 70,000 = 0.071 > 0.06 but... balance 70,000 <= 120,000, cut applies.
	state := &domain.YearState{Year: 2024, Age: 65, Balance: 70_000}
	got, err := g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	require.InDelta(t, 4_500.0, got, 1e-9)

	g.Reset()

	// With a balance above 120% of initial the same breach is left alone.
	// base 5,000; cumulative inflation raises the adjusted withdrawal so
	// the rate breaches while the balance stays prosperous.
	state = &domain.YearState{Year: 2024, Age: 65, Balance: 130_000, Inflation: 0.6}
	got, err = g.CalculateWithdrawal(state, params)
	require.NoError(t, err)
	// 5,000 * 1.6 = 8,000; 8,000/130,000 = 0.0615 > 0.06, no cut.
	require.InDelta(t, 8_000.0, got, 1e-9)
}

func TestGuytonKlingerZeroBalance(t *testing.T) {
	g := mustGuytonKlinger(t)

	got, err := g.CalculateWithdrawal(stateWith(0), testParams())
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestGuytonKlingerReset(t *testing.T) {
	g := mustGuytonKlinger(t)
	params := testParams()

	_, err := g.CalculateWithdrawal(&domain.YearState{Year: 2024, Age: 65, Balance: 500_000}, params)
	require.NoError(t, err)

	g.Reset()

	got, err := g.CalculateWithdrawal(nil, params)
	require.NoError(t, err)
	require.Equal(t, 50_000.0, got)
}
