// Package output aggregates simulation results into summary statistics and
// exports them as reports and CSV files.
package output

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// Percentiles holds the balance percentile bands reported per year.
type Percentiles struct {
	P10 float64 `json:"p10"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
}

// YearStats aggregates one simulated year across all paths.
type YearStats struct {
	Year             int         `json:"year"`
	MeanBalance      float64     `json:"mean_balance"`
	MedianBalance    float64     `json:"median_balance"`
	StdDevBalance    float64     `json:"std_dev_balance"`
	MinBalance       float64     `json:"min_balance"`
	MaxBalance       float64     `json:"max_balance"`
	Balances         Percentiles `json:"balance_percentiles"`
	MeanWithdrawal   float64     `json:"mean_withdrawal"`
	MedianWithdrawal float64     `json:"median_withdrawal"`
	Depleted         int         `json:"depleted"`
}

// Summary holds the aggregate statistics for a simulation run.
type Summary struct {
	SuccessRate      float64     `json:"success_rate"`
	FinalPercentiles Percentiles `json:"final_percentiles"`
	Yearly           []YearStats `json:"yearly"`
	TotalPaths       int         `json:"total_paths"`
	TotalYears       int         `json:"total_years"`
}

// Summarize computes summary statistics from a full state history. Success
// is defined as a positive balance in the final simulated year.
func Summarize(results [][]domain.YearState) (*Summary, error) {
	if len(results) == 0 || len(results[0]) == 0 {
		return nil, fmt.Errorf("no simulation results to summarize")
	}

	paths := len(results)
	years := len(results[0])
	for p, path := range results {
		if len(path) != years {
			return nil, fmt.Errorf("path %d has %d years, expected %d", p, len(path), years)
		}
	}

	summary := &Summary{
		Yearly:     make([]YearStats, years),
		TotalPaths: paths,
		TotalYears: years,
	}

	balances := make([]float64, paths)
	withdrawals := make([]float64, 0, paths)

	for y := 0; y < years; y++ {
		withdrawals = withdrawals[:0]
		depleted := 0

		for p := 0; p < paths; p++ {
			state := results[p][y]
			balances[p] = state.Balance
			if state.Balance <= 0 {
				depleted++
			}
			if state.Withdrawal != nil {
				withdrawals = append(withdrawals, *state.Withdrawal)
			}
		}

		stats := YearStats{
			Year:          results[0][y].Year,
			MeanBalance:   mean(balances),
			MedianBalance: percentile(balances, 0.5),
			StdDevBalance: stdDev(balances),
			MinBalance:    minOf(balances),
			MaxBalance:    maxOf(balances),
			Balances: Percentiles{
				P10: percentile(balances, 0.1),
				P50: percentile(balances, 0.5),
				P90: percentile(balances, 0.9),
			},
			Depleted: depleted,
		}
		if len(withdrawals) > 0 {
			stats.MeanWithdrawal = mean(withdrawals)
			stats.MedianWithdrawal = percentile(withdrawals, 0.5)
		}
		summary.Yearly[y] = stats
	}

	final := summary.Yearly[years-1]
	summary.FinalPercentiles = final.Balances
	summary.SuccessRate = float64(paths-final.Depleted) / float64(paths)

	return summary, nil
}

// Render formats the summary as a plain-text report.
func (s *Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Retirement Simulation Summary\n")
	fmt.Fprintf(&b, "=============================\n")
	fmt.Fprintf(&b, "Paths:          %d\n", s.TotalPaths)
	fmt.Fprintf(&b, "Years:          %d\n", s.TotalYears)
	fmt.Fprintf(&b, "Success Rate:   %.2f%%\n", s.SuccessRate*100)
	fmt.Fprintf(&b, "Final Balance:  p10=%s  p50=%s  p90=%s\n",
		dollars(s.FinalPercentiles.P10),
		dollars(s.FinalPercentiles.P50),
		dollars(s.FinalPercentiles.P90))

	final := s.Yearly[len(s.Yearly)-1]
	fmt.Fprintf(&b, "Final Year:     mean=%s  std=%s  depleted=%d\n",
		dollars(final.MeanBalance), dollars(final.StdDevBalance), final.Depleted)

	return b.String()
}

// dollars formats a nominal dollar amount for reports.
func dollars(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(0)
}

// percentile computes the q-th quantile (0-1) with linear interpolation
// between order statistics.
func percentile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	weight := pos - float64(lower)
	return sorted[lower] + weight*(sorted[upper]-sorted[lower])
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev computes the sample standard deviation (n-1 denominator).
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
