// Package strategy implements the withdrawal strategy family used by the
// cash flow ledger. Each strategy computes an annual withdrawal amount from
// the current year state and the fixed portfolio parameters; stateful
// strategies accumulate per-run history and must be Reset (or rebuilt)
// before being reused for an independent run.
package strategy

import (
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// Strategy is the common contract for all withdrawal strategies.
type Strategy interface {
	// CalculateWithdrawal returns the withdrawal amount in nominal dollars
	// for the year described by state. A nil state probes first-year
	// behavior: the strategy falls back to params.InitBalance and its
	// default age. The returned amount is always finite and non-negative.
	CalculateWithdrawal(state *domain.YearState, params domain.PortfolioParams) (float64, error)

	// Name returns the strategy name for logging and reports.
	Name() string
}

// Resetter is implemented by strategies that carry per-run history.
type Resetter interface {
	// Reset clears accumulated history so the strategy can be reused
	// for an independent simulation run.
	Reset()
}
