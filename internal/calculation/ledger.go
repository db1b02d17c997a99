package calculation

import (
	"fmt"
	"sync"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/strategy"
)

// ReturnGenerator produces the annual return matrix consumed by the
// ledger. MarketSimulator is the production implementation; tests inject
// fixed generators.
type ReturnGenerator interface {
	Generate(nPaths, nYears int) ([][]float64, error)
}

// TaxEngine computes the tax owed on a year's withdrawal given the
// post-withdrawal balance. The ledger invokes it only when the withdrawal
// is positive.
type TaxEngine func(withdrawal, balance float64) float64

// NoTax is the default tax engine: no taxes.
func NoTax(withdrawal, balance float64) float64 {
	return 0.0
}

// StrategyFactory builds a fresh strategy instance. Parallel runs need one
// instance per path because stateful strategies carry per-path history.
type StrategyFactory func() (strategy.Strategy, error)

// CashFlowLedger drives the annual state transition loop across all
// simulation paths: withdrawal, tax, fees and market return, with the
// balance floored at zero. Years within a path are strictly sequential;
// paths are independent.
type CashFlowLedger struct {
	market   ReturnGenerator
	strategy strategy.Strategy
	params   domain.PortfolioParams
	tax      TaxEngine
	logger   Logger

	// StartYear and StartAge anchor the calendar for YearState records.
	StartYear int
	StartAge  int

	feeFactor float64
}

// NewCashFlowLedger creates a ledger with no taxes and the default
// starting year and age.
func NewCashFlowLedger(market ReturnGenerator, strat strategy.Strategy, params domain.PortfolioParams) *CashFlowLedger {
	return &CashFlowLedger{
		market:    market,
		strategy:  strat,
		params:    params,
		tax:       NoTax,
		logger:    NopLogger{},
		StartYear: domain.DefaultStartYear,
		StartAge:  domain.DefaultStartAge,
		feeFactor: params.FeeFactor(),
	}
}

// SetTaxEngine sets the tax engine. A nil engine restores the no-tax default.
func (l *CashFlowLedger) SetTaxEngine(tax TaxEngine) {
	if tax == nil {
		tax = NoTax
	}
	l.tax = tax
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (l *CashFlowLedger) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	l.logger = logger
}

// Run simulates the given number of years and paths and returns the full
// per-year state history, path-major. The configured strategy instance is
// shared across paths and processes them in order.
func (l *CashFlowLedger) Run(years, paths int) ([][]domain.YearState, error) {
	returns, err := l.market.Generate(paths, years)
	if err != nil {
		return nil, fmt.Errorf("failed to generate returns: %w", err)
	}

	l.logger.Debugf("running %d paths x %d years, strategy=%s", paths, years, l.strategy.Name())

	results := make([][]domain.YearState, paths)
	for p := 0; p < paths; p++ {
		states := make([]domain.YearState, years)
		if err := l.runPath(returns[p], l.strategy, states, nil); err != nil {
			return nil, fmt.Errorf("path %d: %w", p, err)
		}
		results[p] = states
	}

	return results, nil
}

// RunBalances simulates the given number of years and paths and returns
// only the (paths, years) matrix of end-of-year balances. Balances are
// numerically identical to those produced by Run for the same inputs.
func (l *CashFlowLedger) RunBalances(years, paths int) ([][]float64, error) {
	returns, err := l.market.Generate(paths, years)
	if err != nil {
		return nil, fmt.Errorf("failed to generate returns: %w", err)
	}

	balances := newMatrix(paths, years)
	for p := 0; p < paths; p++ {
		if err := l.runPath(returns[p], l.strategy, nil, balances[p]); err != nil {
			return nil, fmt.Errorf("path %d: %w", p, err)
		}
	}

	return balances, nil
}

// RunBalancesParallel is RunBalances with paths fanned out across workers.
// Each path gets its own strategy instance from the factory, so stateful
// strategies never share history across concurrently executing paths.
func (l *CashFlowLedger) RunBalancesParallel(years, paths, workers int, factory StrategyFactory) ([][]float64, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", workers)
	}

	returns, err := l.market.Generate(paths, years)
	if err != nil {
		return nil, fmt.Errorf("failed to generate returns: %w", err)
	}

	balances := newMatrix(paths, years)
	errs := make([]error, paths)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for p := 0; p < paths; p++ {
		wg.Add(1)
		go func(pathIdx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			strat, err := factory()
			if err != nil {
				errs[pathIdx] = err
				return
			}
			errs[pathIdx] = l.runPath(returns[pathIdx], strat, nil, balances[pathIdx])
		}(p)
	}

	wg.Wait()

	for p, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", p, err)
		}
	}

	return balances, nil
}

// runPath applies the year-by-year transition to a single path. Exactly
// one of states or balances may be nil; both record the same balance
// values, which keeps the two output shapes numerically identical.
func (l *CashFlowLedger) runPath(returns []float64, strat strategy.Strategy, states []domain.YearState, balances []float64) error {
	balance := l.params.InitBalance

	for y, marketReturn := range returns {
		current := domain.YearState{
			Year:      l.StartYear + y,
			Age:       l.StartAge + y,
			Balance:   balance,
			Inflation: 0.0, // placeholder: inflation modeling is an input, fixed at zero
		}

		withdrawal, err := strat.CalculateWithdrawal(&current, l.params)
		if err != nil {
			return fmt.Errorf("year %d: %w", current.Year, err)
		}

		balance -= withdrawal
		if withdrawal > 0 {
			balance -= l.tax(withdrawal, balance)
		}

		// Fees and market return in one step, floored at zero.
		balance = balance * l.feeFactor * (1.0 + marketReturn)
		if balance < 0 {
			balance = 0.0
		}

		if states != nil {
			w := withdrawal
			states[y] = domain.YearState{
				Year:       current.Year,
				Age:        current.Age,
				Balance:    balance,
				Inflation:  current.Inflation,
				Withdrawal: &w,
			}
		}
		if balances != nil {
			balances[y] = balance
		}
	}

	return nil
}
