package strategy

import (
	"fmt"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// ConstantPercentage withdraws a fixed percentage of the current balance
// each year. Unlike the 4% rule it tracks portfolio performance: the dollar
// amount rises and falls with the balance.
type ConstantPercentage struct {
	percentage float64
}

// NewConstantPercentage creates a constant percentage strategy. The
// percentage is a fraction of the current balance and must be in [0, 1].
func NewConstantPercentage(percentage float64) (*ConstantPercentage, error) {
	if percentage < 0 {
		return nil, fmt.Errorf("percentage must be non-negative, got %f", percentage)
	}
	if percentage > 1 {
		return nil, fmt.Errorf("percentage must be <= 1.0, got %f", percentage)
	}

	return &ConstantPercentage{percentage: percentage}, nil
}

// CalculateWithdrawal returns the configured percentage of the current
// balance, or of the initial balance when no state is available.
func (c *ConstantPercentage) CalculateWithdrawal(state *domain.YearState, params domain.PortfolioParams) (float64, error) {
	if state == nil {
		return params.InitBalance * c.percentage, nil
	}
	return state.Balance * c.percentage, nil
}

// Name returns the strategy name
func (c *ConstantPercentage) Name() string {
	return "constant_pct"
}
