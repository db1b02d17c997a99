package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FilingStatus selects the federal tax bracket table.
type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

// taxBracket is a marginal rate applied to income above its threshold.
type taxBracket struct {
	rate      float64
	threshold float64
}

// 2025 federal marginal brackets. This is a simplified simulation model:
// withdrawals are treated as ordinary income, with no deductions, credits,
// AMT, NIIT, or state taxes. Not tax advice.
var singleBrackets2025 = []taxBracket{
	{0.10, 0},
	{0.12, 11_000},
	{0.22, 41_630},
	{0.24, 95_375},
	{0.32, 182_050},
	{0.35, 231_250},
	{0.37, 578_125},
}

var marriedBrackets2025 = []taxBracket{
	{0.10, 0},
	{0.12, 22_000},
	{0.22, 89_450},
	{0.24, 190_750},
	{0.32, 364_200},
	{0.35, 462_500},
	{0.37, 693_750},
}

func bracketsFor(status FilingStatus) ([]taxBracket, error) {
	switch status {
	case FilingSingle:
		return singleBrackets2025, nil
	case FilingMarried:
		return marriedBrackets2025, nil
	default:
		return nil, fmt.Errorf("filing status must be %q or %q, got %q", FilingSingle, FilingMarried, status)
	}
}

// CalcTax calculates federal income tax on ordinary income using the 2025
// marginal brackets, rounded to cents.
func CalcTax(income float64, status FilingStatus) (float64, error) {
	brackets, err := bracketsFor(status)
	if err != nil {
		return 0, err
	}

	if income <= 0 {
		return 0.0, nil
	}

	totalTax := 0.0
	remaining := income

	for i, bracket := range brackets {
		if remaining <= 0 {
			break
		}

		bracketSize := math.Inf(1)
		if i+1 < len(brackets) {
			bracketSize = brackets[i+1].threshold - bracket.threshold
		}

		inBracket := math.Min(remaining, bracketSize)
		totalTax += inBracket * bracket.rate
		remaining -= inBracket
	}

	return decimal.NewFromFloat(totalTax).Round(2).InexactFloat64(), nil
}

// EffectiveTaxRate returns total tax divided by income.
func EffectiveTaxRate(income float64, status FilingStatus) (float64, error) {
	if income <= 0 {
		return 0.0, nil
	}

	tax, err := CalcTax(income, status)
	if err != nil {
		return 0, err
	}
	return tax / income, nil
}

// MarginalTaxRate returns the rate that would apply to the next dollar of
// income.
func MarginalTaxRate(income float64, status FilingStatus) (float64, error) {
	brackets, err := bracketsFor(status)
	if err != nil {
		return 0, err
	}

	if income <= 0 {
		return 0.0, nil
	}

	for i := len(brackets) - 1; i >= 0; i-- {
		if income > brackets[i].threshold {
			return brackets[i].rate, nil
		}
	}
	return brackets[0].rate, nil
}

// NewTaxEngine builds a TaxEngine that taxes each year's withdrawal as
// ordinary income under the given filing status. The balance argument is
// unused by federal tax math but kept for the collaborator contract.
func NewTaxEngine(status FilingStatus) (TaxEngine, error) {
	if _, err := bracketsFor(status); err != nil {
		return nil, err
	}

	return func(withdrawal, balance float64) float64 {
		tax, _ := CalcTax(withdrawal, status)
		return tax
	}, nil
}
