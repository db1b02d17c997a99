package strategy

import (
	"fmt"
)

// Options holds the per-strategy tuning knobs.
type Options struct {
	// constant_pct
	Percent float64

	// endowment
	Alpha  float64
	Beta   float64
	Window int

	// guyton_klinger
	InitialRate float64
	GuardPct    float64
	RaisePct    float64
	CutPct      float64

	// vpw
	VPWTablePath string
}

// DefaultOptions returns the default strategy options
func DefaultOptions() Options {
	return Options{
		Percent:     0.05,
		Alpha:       0.7,
		Beta:        0.3,
		Window:      3,
		InitialRate: 0.05,
		GuardPct:    0.20,
		RaisePct:    0.10,
		CutPct:      0.10,
	}
}

// Names lists the registered strategy names.
func Names() []string {
	return []string{
		"dummy",
		"four_percent_rule",
		"constant_pct",
		"endowment",
		"guyton_klinger",
		"vpw",
	}
}

// New builds a strategy by name. Construction errors (invalid parameters,
// unreadable VPW tables) are surfaced eagerly, before any simulation runs.
func New(name string, opts Options) (Strategy, error) {
	switch name {
	case "dummy":
		return NewDummy(), nil
	case "four_percent_rule":
		return NewFourPercentRule(), nil
	case "constant_pct":
		return NewConstantPercentage(opts.Percent)
	case "endowment":
		return NewEndowment(opts.Alpha, opts.Beta, opts.Window)
	case "guyton_klinger":
		return NewGuytonKlinger(opts.InitialRate, opts.GuardPct, opts.RaisePct, opts.CutPct)
	case "vpw":
		if opts.VPWTablePath != "" {
			return NewVPWFromFile(opts.VPWTablePath)
		}
		return NewVPW(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, Names())
	}
}
