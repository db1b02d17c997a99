package strategy

import (
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// fourPercentRate is the classic Bengen initial withdrawal rate.
const fourPercentRate = 0.04

// FourPercentRule implements the Bengen 4% rule: withdraw 4% of the
// initial balance in the first year, then scale by the current year's
// inflation to maintain purchasing power. The current balance is ignored.
type FourPercentRule struct{}

// NewFourPercentRule creates a new 4% rule strategy
func NewFourPercentRule() *FourPercentRule {
	return &FourPercentRule{}
}

// CalculateWithdrawal returns 4% of the initial balance, inflation-adjusted
// when a state is present.
func (f *FourPercentRule) CalculateWithdrawal(state *domain.YearState, params domain.PortfolioParams) (float64, error) {
	base := params.InitBalance * fourPercentRate

	if state == nil {
		return base, nil
	}

	return base * (1 + state.Inflation), nil
}

// Name returns the strategy name
func (f *FourPercentRule) Name() string {
	return "four_percent_rule"
}
