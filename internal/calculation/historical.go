package calculation

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// syntheticSeed is the fixed seed used to generate the placeholder
// historical series. It is intentionally not configurable: bootstrap
// reproducibility tests depend on this exact series.
const syntheticSeed = 12345

// syntheticYears is the length of the placeholder historical series.
const syntheticYears = 100

// HistoricalSource supplies the pool of historical annual returns used by
// bootstrap sampling. Implementations load the series once; the simulator
// precomputes its 5-year windows from it.
type HistoricalSource interface {
	// AnnualReturns returns the historical annual real returns, oldest
	// first. The series must hold at least 5 years.
	AnnualReturns() ([]float64, error)
}

// SyntheticSource generates a synthetic 100-year return series that
// roughly matches historical S&P 500 characteristics (mean 7%, std dev
// 18%). It stands in for real Shiller data until a real dataset is wired
// up via CSVSource.
type SyntheticSource struct{}

// AnnualReturns generates the synthetic series from the fixed seed.
func (SyntheticSource) AnnualReturns() ([]float64, error) {
	rng := rand.New(rand.NewSource(syntheticSeed))

	returns := make([]float64, syntheticYears)
	for i := range returns {
		returns[i] = 0.07 + 0.18*rng.NormFloat64()
	}
	return returns, nil
}

// CSVSource loads historical annual returns from a CSV file with
// "year,return" rows. A first row that is non-numeric in both columns is
// treated as a header; a first row with a numeric year and a malformed
// return is rejected like any other row.
type CSVSource struct {
	Path string
}

// AnnualReturns reads and parses the CSV file.
func (s CSVSource) AnnualReturns() ([]float64, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open historical data %s: %w", s.Path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read historical data %s: %w", s.Path, err)
	}

	var returns []float64
	for i, record := range records {
		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: expected year,return columns, got %d fields", i+1, len(record))
		}
		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			if i == 0 {
				if _, yearErr := strconv.ParseFloat(record[0], 64); yearErr != nil {
					continue // header row
				}
			}
			return nil, fmt.Errorf("row %d: invalid return value %q: %w", i+1, record[1], err)
		}
		returns = append(returns, value)
	}

	if len(returns) < 5 {
		return nil, fmt.Errorf("historical data %s holds %d years, need at least 5", s.Path, len(returns))
	}

	return returns, nil
}
