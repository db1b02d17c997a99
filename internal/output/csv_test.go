package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, makeResults([]float64{500_000, 0})))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus 2 paths x 2 years.
	require.Len(t, records, 5)
	require.Equal(t, csvHeader, records[0])

	require.Equal(t, []string{"0", "2024", "65", "1000000", "40000", "0"}, records[1])
	require.Equal(t, "1", records[3][0])
	require.Equal(t, "2025", records[4][1])
	require.Equal(t, "0", records[4][3])
}

func TestWriteCSVMissingWithdrawal(t *testing.T) {
	results := makeResults([]float64{100})
	results[0][0].Withdrawal = nil

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, "", records[1][4])
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveCSV(path, makeResults([]float64{100, 200})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "path,year,age,balance")
}
