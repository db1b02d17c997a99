package calculation

import (
	"fmt"
	"math/rand"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// Mode selects the return generation model.
type Mode string

const (
	// ModeLognormal draws independent annual returns from a normal model
	// of real equity-like returns.
	ModeLognormal Mode = "lognormal"
	// ModeBootstrap resamples contiguous 5-year blocks from a historical
	// return series.
	ModeBootstrap Mode = "bootstrap"
)

// Long-run real return assumptions for the lognormal model.
const (
	lognormalMean   = 0.07
	lognormalStdDev = 0.15
)

// bootstrapBlockYears is the length of the contiguous blocks resampled in
// bootstrap mode.
const bootstrapBlockYears = 5

// MarketSimulator generates annual real return matrices. Two simulators
// constructed with the same seed and mode produce bit-identical output;
// the draw order (paths first, then years within a path, block indices
// before remainder years) is part of that contract.
type MarketSimulator struct {
	params domain.PortfolioParams
	mode   Mode
	rng    *rand.Rand

	// Bootstrap state, prepared once at construction.
	historical []float64
	blocks     [][]float64
}

// NewMarketSimulator creates a simulator seeded from params. Bootstrap
// mode uses the synthetic placeholder series.
func NewMarketSimulator(params domain.PortfolioParams, mode Mode) (*MarketSimulator, error) {
	return NewMarketSimulatorWithSource(params, mode, SyntheticSource{})
}

// NewMarketSimulatorWithSource creates a simulator that draws bootstrap
// samples from the given historical source.
func NewMarketSimulatorWithSource(params domain.PortfolioParams, mode Mode, source HistoricalSource) (*MarketSimulator, error) {
	if mode != ModeLognormal && mode != ModeBootstrap {
		return nil, fmt.Errorf("invalid market mode %q (expected %q or %q)", mode, ModeLognormal, ModeBootstrap)
	}

	ms := &MarketSimulator{
		params: params,
		mode:   mode,
		rng:    rand.New(rand.NewSource(params.Seed)),
	}

	if mode == ModeBootstrap {
		returns, err := source.AnnualReturns()
		if err != nil {
			return nil, fmt.Errorf("failed to load historical returns: %w", err)
		}
		if len(returns) < bootstrapBlockYears {
			return nil, fmt.Errorf("historical series holds %d years, need at least %d", len(returns), bootstrapBlockYears)
		}
		ms.historical = returns
		ms.prepareBlocks()
	}

	return ms, nil
}

// Mode returns the configured generation mode.
func (ms *MarketSimulator) Mode() Mode {
	return ms.mode
}

// Generate produces an nPaths x nYears matrix of annual real returns.
func (ms *MarketSimulator) Generate(nPaths, nYears int) ([][]float64, error) {
	if nPaths <= 0 {
		return nil, fmt.Errorf("n_paths must be positive, got %d", nPaths)
	}
	if nYears <= 0 {
		return nil, fmt.Errorf("n_years must be positive, got %d", nYears)
	}

	if ms.mode == ModeLognormal {
		return ms.generateLognormal(nPaths, nYears), nil
	}
	return ms.generateBootstrap(nPaths, nYears), nil
}

// generateLognormal draws every return as mu + sigma*Z from the seeded
// stream, row-major across the whole matrix.
func (ms *MarketSimulator) generateLognormal(nPaths, nYears int) [][]float64 {
	returns := newMatrix(nPaths, nYears)
	for p := 0; p < nPaths; p++ {
		for y := 0; y < nYears; y++ {
			returns[p][y] = lognormalMean + lognormalStdDev*ms.rng.NormFloat64()
		}
	}
	return returns
}

// generateBootstrap assembles each path from nYears/5 resampled 5-year
// blocks plus nYears%5 individually sampled remainder years. Block indices
// for all paths are drawn first, then the remainder draws, so a given seed
// always yields the same matrix regardless of shape quirks.
func (ms *MarketSimulator) generateBootstrap(nPaths, nYears int) [][]float64 {
	blocksPerPath := nYears / bootstrapBlockYears
	remainderYears := nYears % bootstrapBlockYears

	blockIndices := make([][]int, nPaths)
	for p := 0; p < nPaths; p++ {
		blockIndices[p] = make([]int, blocksPerPath)
		for i := 0; i < blocksPerPath; i++ {
			blockIndices[p][i] = ms.rng.Intn(len(ms.blocks))
		}
	}

	returns := newMatrix(nPaths, nYears)
	for p := 0; p < nPaths; p++ {
		for i := 0; i < blocksPerPath; i++ {
			copy(returns[p][i*bootstrapBlockYears:], ms.blocks[blockIndices[p][i]])
		}
	}

	if remainderYears > 0 {
		// Remainder years sample individual years from the flattened
		// pool, not from blocks.
		for p := 0; p < nPaths; p++ {
			for y := nYears - remainderYears; y < nYears; y++ {
				returns[p][y] = ms.historical[ms.rng.Intn(len(ms.historical))]
			}
		}
	}

	return returns
}

// prepareBlocks precomputes every overlapping 5-year window of the
// historical series.
func (ms *MarketSimulator) prepareBlocks() {
	n := len(ms.historical) - bootstrapBlockYears + 1
	ms.blocks = make([][]float64, n)
	for i := 0; i < n; i++ {
		ms.blocks[i] = ms.historical[i : i+bootstrapBlockYears]
	}
}

// newMatrix allocates a dense nPaths x nYears matrix backed by one slice.
func newMatrix(nPaths, nYears int) [][]float64 {
	backing := make([]float64, nPaths*nYears)
	matrix := make([][]float64, nPaths)
	for p := range matrix {
		matrix[p] = backing[p*nYears : (p+1)*nYears]
	}
	return matrix
}
