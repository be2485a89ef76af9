package sp

// zeroEpsilon separates "η < 1" from "η = 1" (saturated survey) when
// tolerances would otherwise divide by zero.
const zeroEpsilon = 1e-16

// recomputeInterval is how often (in outer iterations) the per-variable
// sub-product caches are fully rebuilt from scratch as a drift floor,
// guarding against floating-point accumulation error in the incremental
// patch.
const recomputeInterval = 50

// DefaultMaxIterations and DefaultEpsilon are Run's default iteration cap
// and convergence threshold.
const (
	DefaultMaxIterations = 1000
	DefaultEpsilon       = 0.001
)

// DefaultParamagneticState is the heuristic threshold solver.SID uses to
// decide the surveys have collapsed to the trivial state even when SP
// itself reports convergence. It has no principled derivation and is
// tunable.
const DefaultParamagneticState = 0.01
