package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// csvHeader is the long-format export layout: one row per path per year.
var csvHeader = []string{"path", "year", "age", "balance", "withdrawal_nominal", "inflation"}

// WriteCSV writes the full state history as long-format CSV rows, one row
// per path per year.
func WriteCSV(w io.Writer, results [][]domain.YearState) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for pathIdx, path := range results {
		for _, state := range path {
			withdrawal := ""
			if state.Withdrawal != nil {
				withdrawal = strconv.FormatFloat(*state.Withdrawal, 'f', -1, 64)
			}
			row := []string{
				strconv.Itoa(pathIdx),
				strconv.Itoa(state.Year),
				strconv.Itoa(state.Age),
				strconv.FormatFloat(state.Balance, 'f', -1, 64),
				withdrawal,
				strconv.FormatFloat(state.Inflation, 'f', -1, 64),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the state history to a file.
func SaveCSV(path string, results [][]domain.YearState) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, results); err != nil {
		return err
	}
	return file.Close()
}
