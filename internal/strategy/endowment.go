package strategy

import (
	"fmt"
	"math"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// Endowment implements the Yale endowment moving-average formula:
//
//	withdrawal = alpha*currentBalance + beta*movingAverage(balances, window)
//
// The moving average over recent balances smooths withdrawals relative to
// strategies that only look at the current value.
type Endowment struct {
	alpha  float64
	beta   float64
	window int

	// history holds the last window observed balances, oldest first.
	history []float64
}

// NewEndowment creates an endowment strategy. Alpha and beta weight the
// current balance and the moving average respectively and must sum to 1.
func NewEndowment(alpha, beta float64, window int) (*Endowment, error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("alpha must be between 0 and 1, got %f", alpha)
	}
	if beta < 0 || beta > 1 {
		return nil, fmt.Errorf("beta must be between 0 and 1, got %f", beta)
	}
	if math.Abs(alpha+beta-1.0) > 1e-10 {
		return nil, fmt.Errorf("alpha + beta must equal 1.0, got %f", alpha+beta)
	}
	if window < 1 {
		return nil, fmt.Errorf("window must be at least 1, got %d", window)
	}

	return &Endowment{
		alpha:   alpha,
		beta:    beta,
		window:  window,
		history: make([]float64, 0, window),
	}, nil
}

// CalculateWithdrawal applies the Yale formula. The current balance is
// appended to the bounded history before the moving average is taken; a
// nil state restarts the history from the initial balance.
func (e *Endowment) CalculateWithdrawal(state *domain.YearState, params domain.PortfolioParams) (float64, error) {
	var balance float64
	if state == nil {
		balance = params.InitBalance
		e.Reset()
	} else {
		balance = state.Balance
	}
	e.observe(balance)

	sum := 0.0
	for _, b := range e.history {
		sum += b
	}
	movingAverage := sum / float64(len(e.history))

	return e.alpha*balance + e.beta*movingAverage, nil
}

// observe appends a balance to the history, evicting the oldest entry
// once the window is full.
func (e *Endowment) observe(balance float64) {
	if len(e.history) == e.window {
		copy(e.history, e.history[1:])
		e.history = e.history[:e.window-1]
	}
	e.history = append(e.history, balance)
}

// Reset clears the balance history for a new simulation run.
func (e *Endowment) Reset() {
	e.history = e.history[:0]
}

// Name returns the strategy name
func (e *Endowment) Name() string {
	return "endowment"
}
