package strategy

import (
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// Dummy is a zero-withdrawal strategy. It is used as a baseline for
// isolating market return and fee effects on the balance.
type Dummy struct{}

// NewDummy creates a new dummy strategy
func NewDummy() *Dummy {
	return &Dummy{}
}

// CalculateWithdrawal always returns zero
func (d *Dummy) CalculateWithdrawal(_ *domain.YearState, _ domain.PortfolioParams) (float64, error) {
	return 0.0, nil
}

// Name returns the strategy name
func (d *Dummy) Name() string {
	return "dummy"
}
