package domain

import (
	"fmt"
	"math"
	"time"
)

// LoanParams holds the parameters for a fixed-rate amortized loan
type LoanParams struct {
	Principal  float64   `json:"principal" yaml:"principal"`
	Rate       float64   `json:"rate" yaml:"rate"`
	TermMonths int       `json:"term_months" yaml:"term_months"`
	Start      time.Time `json:"start" yaml:"start"`
}

// Validate checks the loan parameters
func (l LoanParams) Validate() error {
	if l.Principal <= 0 {
		return fmt.Errorf("principal must be positive, got %f", l.Principal)
	}
	if l.Rate < 0 {
		return fmt.Errorf("rate cannot be negative, got %f", l.Rate)
	}
	if l.TermMonths <= 0 {
		return fmt.Errorf("term_months must be positive, got %d", l.TermMonths)
	}
	return nil
}

// MonthlyPayment calculates the fixed monthly payment using the standard
// amortization formula PMT = P * r(1+r)^n / ((1+r)^n - 1).
func (l LoanParams) MonthlyPayment() float64 {
	if l.Rate == 0 {
		return l.Principal / float64(l.TermMonths)
	}

	monthlyRate := l.Rate / 12
	n := float64(l.TermMonths)
	compound := math.Pow(1+monthlyRate, n)

	return l.Principal * (monthlyRate * compound) / (compound - 1)
}
