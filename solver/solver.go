package solver

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/sidsat/bias"
	"github.com/katalvlaran/sidsat/core"
	"github.com/katalvlaran/sidsat/decimate"
	"github.com/katalvlaran/sidsat/rng"
	"github.com/katalvlaran/sidsat/sp"
	"github.com/katalvlaran/sidsat/walksat"
)

// SID runs the Survey-Inspired Decimation algorithm on g to completion,
// mutating it in place until a terminal Outcome is reached. Every
// randomized step (initial surveys, clause shuffling, bias tie-breaking,
// WalkSAT) draws from a single RNG seeded by Params.Seed, never from
// math/rand's global source.
//
// Each invocation gets a fresh RunID, attached to every log line it emits
// (debug events for each SP run, decimation step and WalkSAT fallback, one
// info line for the terminal outcome) and returned in Result.
func SID(g *core.Graph, logger zerolog.Logger, opts ...Option) Result {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	runID := uuid.New().String()
	log := logger.With().Str("run_id", runID).Int("variables", g.NumVariables()).Logger()
	r := rng.New(p.Seed)

	var stats Stats
	for {
		stats.SIDTotalIterations++

		// Unit propagation runs at the top of every iteration, including
		// the first, so a CNF that ships with a pre-existing unit clause
		// is resolved as far as possible before ever invoking SP.
		if seed := decimate.ScanUnitClauses(g); len(seed) > 0 {
			if err := decimate.Propagate(g, seed); err != nil {
				return terminal(log, &stats, runID, Contradiction)
			}
			if g.IsSAT() {
				return terminal(log, &stats, runID, Sat)
			}
		}

		spRes := sp.Run(g, r, sp.WithMaxIterations(p.SPMaxIterations), sp.WithEpsilon(p.SPEpsilon))
		stats.SPTotalIterations += spRes.Iterations
		log.Debug().
			Int("sid_iteration", stats.SIDTotalIterations).
			Str("sp_state", spRes.State.String()).
			Int("sp_iterations", spRes.Iterations).
			Float64("sp_max_delta", spRes.MaxDelta).
			Msg("survey propagation")

		if spRes.State == sp.Unconverged {
			return terminal(log, &stats, runID, Unconverged)
		}
		if spRes.State == sp.Trivial {
			return runWalksat(g, r, &p, &stats, log, runID)
		}

		if meanMaxBias(g) < p.ParamagneticState {
			return runWalksat(g, r, &p, &stats, log, runID)
		}

		fixed, err := decimate.FixTopBiased(g, p.DecimationFraction, r)
		log.Debug().
			Int("sid_iteration", stats.SIDTotalIterations).
			Int("fixed", fixed).
			Msg("decimation")
		if err != nil {
			return terminal(log, &stats, runID, Contradiction)
		}

		if g.IsSAT() {
			return terminal(log, &stats, runID, Sat)
		}
	}
}

func runWalksat(g *core.Graph, r *rand.Rand, p *Params, stats *Stats, log zerolog.Logger, runID string) Result {
	n := g.NumVariables()
	outcome, flips := walksat.Solve(g, r,
		walksat.WithMaxTries(p.WalksatTries),
		walksat.WithMaxFlips(p.WalksatFlipsCoef*n),
		walksat.WithNoise(p.WalksatNoise),
	)
	stats.WalksatTotalFlips += flips
	log.Debug().Int("ws_flips", flips).Str("ws_outcome", outcome.String()).Msg("walksat")

	if outcome == walksat.Sat {
		return terminal(log, stats, runID, SatViaWalksat)
	}
	return terminal(log, stats, runID, Indeterminate)
}

func terminal(log zerolog.Logger, stats *Stats, runID string, outcome Outcome) Result {
	log.Info().
		Str("outcome", outcome.String()).
		Int("sid_iterations", stats.SIDTotalIterations).
		Int("sp_iterations", stats.SPTotalIterations).
		Int("ws_flips", stats.WalksatTotalFlips).
		Msg("SID terminal")
	return Result{RunID: runID, Outcome: outcome, Stats: *stats}
}

// meanMaxBias computes mean(max(H+,H-)) over every unassigned variable, an
// alternate paramagnetic-state test alongside SP's own maxDelta collapse.
func meanMaxBias(g *core.Graph) float64 {
	sum, n := 0.0, 0
	for it := g.UnassignedVariables(); ; {
		vi, ok := it.Next()
		if !ok {
			break
		}
		hp, _, hm := bias.Evaluate(g, vi)
		if hp > hm {
			sum += hp
		} else {
			sum += hm
		}
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
