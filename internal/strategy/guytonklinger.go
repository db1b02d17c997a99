package strategy

import (
	"fmt"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// GuytonKlinger implements the Guyton-Klinger guardrails strategy: a base
// withdrawal fixed on the first call grows with cumulative inflation, and
// is cut or raised when the current withdrawal rate drifts outside the
// guardrails around the initial rate.
//
// Guardrail adjustments are gated by the portfolio level relative to the
// initial balance (no cuts above 120%, no raises below 80%). An adjustment
// rewrites the un-inflated base, so it persists into later years.
//
// Cumulative inflation only compounds across consecutive simulation years;
// a gap in the year sequence freezes the multiplier. Intentional
// simplification, not a bug.
//
// Reference: Guyton & Klinger (2006), "Decision rules and maximum initial
// withdrawal rates", Journal of Financial Planning 19(3).
type GuytonKlinger struct {
	initialRate float64
	guardPct    float64
	raisePct    float64
	cutPct      float64

	upperGuardrail float64
	lowerGuardrail float64

	baseWithdrawal      float64
	initialized         bool
	cumulativeInflation float64
	lastYear            int
	haveLastYear        bool
}

// NewGuytonKlinger creates a guardrails strategy. All parameters are
// fractions strictly between 0 and 1.
func NewGuytonKlinger(initialRate, guardPct, raisePct, cutPct float64) (*GuytonKlinger, error) {
	if initialRate <= 0 || initialRate >= 1 {
		return nil, fmt.Errorf("initial_rate must be between 0 and 1, got %f", initialRate)
	}
	if guardPct <= 0 || guardPct >= 1 {
		return nil, fmt.Errorf("guard_pct must be between 0 and 1, got %f", guardPct)
	}
	if raisePct <= 0 || raisePct >= 1 {
		return nil, fmt.Errorf("raise_pct must be between 0 and 1, got %f", raisePct)
	}
	if cutPct <= 0 || cutPct >= 1 {
		return nil, fmt.Errorf("cut_pct must be between 0 and 1, got %f", cutPct)
	}

	return &GuytonKlinger{
		initialRate:         initialRate,
		guardPct:            guardPct,
		raisePct:            raisePct,
		cutPct:              cutPct,
		upperGuardrail:      initialRate * (1 + guardPct),
		lowerGuardrail:      initialRate * (1 - guardPct),
		cumulativeInflation: 1.0,
	}, nil
}

// CalculateWithdrawal returns the guardrail-adjusted withdrawal for the year.
func (g *GuytonKlinger) CalculateWithdrawal(state *domain.YearState, params domain.PortfolioParams) (float64, error) {
	if !g.initialized {
		g.baseWithdrawal = params.InitBalance * g.initialRate
		g.initialized = true
	}

	if state == nil {
		return g.baseWithdrawal, nil
	}

	// Compound inflation only across consecutive years.
	if !g.haveLastYear || state.Year == g.lastYear+1 {
		g.cumulativeInflation *= 1 + state.Inflation
	}
	g.lastYear = state.Year
	g.haveLastYear = true

	inflationAdjusted := g.baseWithdrawal * g.cumulativeInflation

	balance := state.Balance
	if balance <= 0 {
		return 0.0, nil
	}

	currentRate := inflationAdjusted / balance
	withdrawal := inflationAdjusted

	switch {
	case currentRate > g.upperGuardrail:
		// Prosperity exception: no cuts when the portfolio sits above
		// 120% of the initial balance.
		if balance <= params.InitBalance*1.2 {
			withdrawal = inflationAdjusted * (1 - g.cutPct)
			g.baseWithdrawal = withdrawal / g.cumulativeInflation
		}
	case currentRate < g.lowerGuardrail:
		// Capital preservation: no raises when the portfolio sits below
		// 80% of the initial balance.
		if balance >= params.InitBalance*0.8 {
			withdrawal = inflationAdjusted * (1 + g.raisePct)
			g.baseWithdrawal = withdrawal / g.cumulativeInflation
		}
	}

	return withdrawal, nil
}

// Reset clears the base withdrawal and inflation tracking for a new run.
func (g *GuytonKlinger) Reset() {
	g.baseWithdrawal = 0
	g.initialized = false
	g.cumulativeInflation = 1.0
	g.lastYear = 0
	g.haveLastYear = false
}

// Name returns the strategy name
func (g *GuytonKlinger) Name() string {
	return "guyton_klinger"
}
