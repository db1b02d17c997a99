// finsim runs Monte Carlo retirement simulations from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/calculation"
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/config"
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/output"
	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/strategy"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finsim",
		Short: "Monte Carlo retirement simulations",
		Long:  "finsim generates market return paths and simulates withdrawal strategies against them.",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a retirement simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				applyFlagOverrides(cmd, cfg, loaded)
				cfg = loaded
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSimulation(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy,
		fmt.Sprintf("withdrawal strategy %v", strategy.Names()))
	cmd.Flags().IntVarP(&cfg.Years, "years", "y", cfg.Years, "years to simulate")
	cmd.Flags().IntVarP(&cfg.Paths, "paths", "p", cfg.Paths, "simulation paths")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	cmd.Flags().Float64Var(&cfg.InitBalance, "init-balance", cfg.InitBalance, "initial portfolio balance")
	cmd.Flags().Float64Var(&cfg.EquityPct, "equity-pct", cfg.EquityPct, "equity allocation (0-1)")
	cmd.Flags().IntVar(&cfg.FeesBps, "fees-bps", cfg.FeesBps, "annual fees in basis points")
	cmd.Flags().StringVarP(&cfg.MarketMode, "mode", "m", cfg.MarketMode, "market mode (lognormal or bootstrap)")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "CSV output path")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.Flags().StringVar(&cfg.FilingStatus, "filing-status", cfg.FilingStatus, "tax filing status (single or married); empty disables taxes")

	cmd.Flags().Float64Var(&cfg.Percent, "percent", cfg.Percent, "constant_pct: percentage of current balance")
	cmd.Flags().Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "endowment: weight for current balance")
	cmd.Flags().Float64Var(&cfg.Beta, "beta", cfg.Beta, "endowment: weight for moving average")
	cmd.Flags().IntVar(&cfg.Window, "window", cfg.Window, "endowment: moving average window")
	cmd.Flags().Float64Var(&cfg.InitialRate, "initial-rate", cfg.InitialRate, "guyton_klinger: initial withdrawal rate")
	cmd.Flags().Float64Var(&cfg.GuardPct, "guard-pct", cfg.GuardPct, "guyton_klinger: guardrail band")
	cmd.Flags().Float64Var(&cfg.RaisePct, "raise-pct", cfg.RaisePct, "guyton_klinger: raise size")
	cmd.Flags().Float64Var(&cfg.CutPct, "cut-pct", cfg.CutPct, "guyton_klinger: cut size")
	cmd.Flags().StringVar(&cfg.VPWTable, "vpw-table", cfg.VPWTable, "vpw: custom table YAML file")

	return cmd
}

// applyFlagOverrides copies explicitly set flag values over the file
// config, so CLI arguments take precedence.
func applyFlagOverrides(cmd *cobra.Command, flags, loaded *config.SimConfig) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if set("strategy") {
		loaded.Strategy = flags.Strategy
	}
	if set("years") {
		loaded.Years = flags.Years
	}
	if set("paths") {
		loaded.Paths = flags.Paths
	}
	if set("seed") {
		loaded.Seed = flags.Seed
	}
	if set("init-balance") {
		loaded.InitBalance = flags.InitBalance
	}
	if set("equity-pct") {
		loaded.EquityPct = flags.EquityPct
	}
	if set("fees-bps") {
		loaded.FeesBps = flags.FeesBps
	}
	if set("mode") {
		loaded.MarketMode = flags.MarketMode
	}
	if set("output") {
		loaded.Output = flags.Output
	}
	if set("verbose") {
		loaded.Verbose = flags.Verbose
	}
	if set("filing-status") {
		loaded.FilingStatus = flags.FilingStatus
	}
	if set("percent") {
		loaded.Percent = flags.Percent
	}
	if set("alpha") {
		loaded.Alpha = flags.Alpha
	}
	if set("beta") {
		loaded.Beta = flags.Beta
	}
	if set("window") {
		loaded.Window = flags.Window
	}
	if set("initial-rate") {
		loaded.InitialRate = flags.InitialRate
	}
	if set("guard-pct") {
		loaded.GuardPct = flags.GuardPct
	}
	if set("raise-pct") {
		loaded.RaisePct = flags.RaisePct
	}
	if set("cut-pct") {
		loaded.CutPct = flags.CutPct
	}
	if set("vpw-table") {
		loaded.VPWTable = flags.VPWTable
	}
}

func runSimulation(cmd *cobra.Command, cfg *config.SimConfig) error {
	params := cfg.PortfolioParams()

	market, err := calculation.NewMarketSimulator(params, calculation.Mode(cfg.MarketMode))
	if err != nil {
		return err
	}

	strat, err := cfg.BuildStrategy()
	if err != nil {
		return err
	}

	taxEngine, err := cfg.BuildTaxEngine()
	if err != nil {
		return err
	}

	ledger := calculation.NewCashFlowLedger(market, strat, params)
	ledger.SetTaxEngine(taxEngine)
	if cfg.Verbose {
		ledger.SetLogger(stderrLogger{})
	}

	results, err := ledger.Run(cfg.Years, cfg.Paths)
	if err != nil {
		return err
	}

	summary, err := output.Summarize(results)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), summary.Render())

	if cfg.Output != "" {
		if err := output.SaveCSV(cfg.Output, results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", cfg.Output)
	}

	return nil
}

// stderrLogger implements calculation.Logger for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "INFO "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...) }
