package solver

import (
	"github.com/katalvlaran/sidsat/sp"
	"github.com/katalvlaran/sidsat/walksat"
)

// Outcome is the closed set of terminal states SID can return.
type Outcome int

const (
	// Sat means the graph reached a fully satisfying assignment through
	// decimation and unit propagation alone, without ever falling back to
	// WalkSAT.
	Sat Outcome = iota
	// SatViaWalksat means WalkSAT found a model for the residual
	// sub-formula after SP collapsed to the paramagnetic state.
	SatViaWalksat
	// Contradiction means unit propagation or decimation derived an
	// inconsistent partial assignment — UNSAT-evidence, not a crash.
	Contradiction
	// Unconverged means Survey Propagation exceeded its iteration cap
	// without reaching tolerance.
	Unconverged
	// Indeterminate means WalkSAT exhausted every try without finding a
	// model for the residual sub-formula.
	Indeterminate
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "Sat"
	case SatViaWalksat:
		return "SatViaWalksat"
	case Contradiction:
		return "Contradiction"
	case Unconverged:
		return "Unconverged"
	case Indeterminate:
		return "Indeterminate"
	default:
		return "Unknown"
	}
}

// Params bundles every knob the CLI exposes, plus the paramagnetic
// threshold, a tunable heuristic with no principled derivation.
type Params struct {
	DecimationFraction float64
	SPMaxIterations    int
	SPEpsilon          float64
	ParamagneticState  float64
	WalksatNoise       float64
	WalksatTries       int
	WalksatFlipsCoef   int
	Seed               int64
}

// DefaultParams returns SID's default parameters.
func DefaultParams() Params {
	return Params{
		DecimationFraction: 0.0,
		SPMaxIterations:    sp.DefaultMaxIterations,
		SPEpsilon:          sp.DefaultEpsilon,
		ParamagneticState:  sp.DefaultParamagneticState,
		WalksatNoise:       walksat.DefaultNoise,
		WalksatTries:       walksat.DefaultMaxTries,
		WalksatFlipsCoef:   walksat.DefaultFlipsPerVar,
		Seed:               0,
	}
}

// Option mutates Params, resolved from CLI flags by cmd/sidsat.
type Option func(*Params)

// WithDecimationFraction overrides the SID fixing fraction f.
func WithDecimationFraction(f float64) Option {
	return func(p *Params) { p.DecimationFraction = f }
}

// WithSPMaxIterations overrides Survey Propagation's iteration cap.
func WithSPMaxIterations(n int) Option {
	return func(p *Params) { p.SPMaxIterations = n }
}

// WithSPEpsilon overrides Survey Propagation's convergence tolerance.
func WithSPEpsilon(e float64) Option {
	return func(p *Params) { p.SPEpsilon = e }
}

// WithParamagneticState overrides the mean(max(H+,H-)) trivial-surveys
// threshold.
func WithParamagneticState(thresh float64) Option {
	return func(p *Params) { p.ParamagneticState = thresh }
}

// WithWalksatNoise overrides WalkSAT's random-walk probability.
func WithWalksatNoise(noise float64) Option {
	return func(p *Params) { p.WalksatNoise = noise }
}

// WithWalksatTries overrides WalkSAT's restart budget.
func WithWalksatTries(n int) Option {
	return func(p *Params) { p.WalksatTries = n }
}

// WithWalksatFlipsCoef overrides WalkSAT's per-variable flip coefficient
// (maxFlips = coef * N).
func WithWalksatFlipsCoef(c int) Option {
	return func(p *Params) { p.WalksatFlipsCoef = c }
}

// WithSeed overrides the RNG seed (0 means nondeterministic).
func WithSeed(seed int64) Option {
	return func(p *Params) { p.Seed = seed }
}

// Stats accumulates the per-run counters the metrics CSV row needs.
type Stats struct {
	SPTotalIterations  int
	SIDTotalIterations int
	WalksatTotalFlips  int
}

// Result is SID's full report: the terminal outcome plus the bookkeeping
// needed for the CLI's exit behaviour and the metrics CSV row.
type Result struct {
	RunID   string
	Outcome Outcome
	Stats   Stats
}
