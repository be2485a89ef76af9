package sp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sidsat/core"
)

// Run initializes every enabled edge's survey to a uniform random value in
// [0,1), then iterates the SP fixed point until convergence, triviality, or
// the iteration cap.
func Run(g *core.Graph, r *rand.Rand, opts ...Option) Result {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	for it := g.EnabledEdges(); ; {
		ei, ok := it.Next()
		if !ok {
			break
		}
		g.Edge(ei).Survey = r.Float64()
	}
	computeSubProducts(g)

	clauses := enabledClauseIndices(g)

	for iter := 1; iter <= p.MaxIterations; iter++ {
		r.Shuffle(len(clauses), func(i, j int) { clauses[i], clauses[j] = clauses[j], clauses[i] })

		maxDelta := 0.0
		for _, ci := range clauses {
			delta := updateClause(g, ci)
			if delta > maxDelta {
				maxDelta = delta
			}
		}

		if iter%recomputeInterval == 0 {
			computeSubProducts(g)
		}

		if maxDelta <= zeroEpsilon {
			return Result{State: Trivial, Iterations: iter, MaxDelta: maxDelta}
		}
		if maxDelta <= p.Epsilon {
			return Result{State: Converged, Iterations: iter, MaxDelta: maxDelta}
		}
	}
	return Result{State: Unconverged, Iterations: p.MaxIterations}
}

func enabledClauseIndices(g *core.Graph) []int {
	var out []int
	for it := g.EnabledClauses(); ; {
		ci, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, ci)
	}
	return out
}

// computeSubProducts rebuilds every variable's P/M/PZero/MZero caches from
// scratch against the current enabled-edge surveys. Called once before the
// first iteration and periodically thereafter (recomputeInterval) as a
// drift floor.
func computeSubProducts(g *core.Graph) {
	for it := g.UnassignedVariables(); ; {
		vi, ok := it.Next()
		if !ok {
			break
		}
		computeVariableSubProduct(g, vi)
	}
}

func computeVariableSubProduct(g *core.Graph, vi int) {
	v := g.Variable(vi)
	v.P, v.M = 1, 1
	v.PZero, v.MZero = 0, 0
	for it := g.EnabledEdgesOfVariable(vi); ; {
		ei, ok := it.Next()
		if !ok {
			break
		}
		e := g.Edge(ei)
		if e.Type {
			if saturated(e.Survey) {
				v.PZero++
			} else {
				v.P *= 1 - e.Survey
			}
		} else {
			if saturated(e.Survey) {
				v.MZero++
			} else {
				v.M *= 1 - e.Survey
			}
		}
	}
}

func saturated(eta float64) bool {
	return eta >= 1-zeroEpsilon
}

// updateClause runs the two-pass SP update over one clause and returns the
// largest |η_new - η_old| seen on it.
func updateClause(g *core.Graph, ci int) float64 {
	edges := enabledEdgeIndices(g, ci)
	if len(edges) == 0 {
		return 0
	}

	subS := make([]float64, len(edges))
	zeroCount := 0
	prodNonzero := 1.0
	for i, ei := range edges {
		s := subSurvey(g, ei)
		subS[i] = s
		if s == 0 {
			zeroCount++
		} else {
			prodNonzero *= s
		}
	}

	maxDelta := 0.0
	for i, ei := range edges {
		var newEta float64
		switch {
		case zeroCount == 0:
			newEta = prodNonzero / subS[i]
		case zeroCount == 1 && subS[i] == 0:
			newEta = prodNonzero
		default:
			newEta = 0
		}
		if math.IsNaN(newEta) {
			newEta = 0
		}
		if newEta < 0 {
			newEta = 0
		} else if newEta > 1 {
			newEta = 1
		}

		e := g.Edge(ei)
		oldEta := e.Survey
		patchVariableCache(g, e, oldEta, newEta)
		e.Survey = newEta

		if d := math.Abs(newEta - oldEta); d > maxDelta {
			maxDelta = d
		}
	}
	return maxDelta
}

func enabledEdgeIndices(g *core.Graph, ci int) []int {
	var out []int
	for it := g.EnabledEdgesOfClause(ci); ; {
		ei, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, ei)
	}
	return out
}

// subSurvey computes the per-(clause,edge) factor w^u/(w^u+w^s+w^0) that
// feeds the clause-level product giving η_{a→i}, using the variable's
// cached sub-products to avoid an O(degree) rescan per edge.
func subSurvey(g *core.Graph, ei int) float64 {
	e := g.Edge(ei)
	v := g.Variable(e.VarIdx)
	eSaturated := saturated(e.Survey)

	var ownProd, oppProd float64
	var ownZero, oppZero int
	if e.Type {
		ownProd, ownZero = v.P, v.PZero
		oppProd, oppZero = v.M, v.MZero
	} else {
		ownProd, ownZero = v.M, v.MZero
		oppProd, oppZero = v.P, v.PZero
	}

	sameVal, sameIsZero := removeEdge(ownProd, ownZero, e.Survey, eSaturated)

	piS := sameVal
	if sameIsZero {
		piS = 0
	}
	piU := oppProd
	if oppZero > 0 {
		piU = 0
	}
	pi0 := piU * piS

	wU := (1 - piU) * piS
	wS := (1 - piS) * piU
	w0 := pi0

	denom := wU + wS + w0
	if denom == 0 {
		return 0
	}
	result := wU / denom
	if math.IsNaN(result) {
		return 0
	}
	return result
}

// removeEdge computes the "without e" value of a same-polarity group whose
// full state is (prod, zeroCount): divide out e's own factor when no edge
// in the group is saturated, return the cache unchanged when e is the sole
// saturated edge, or collapse to zero when another saturated edge remains.
func removeEdge(prod float64, zeroCount int, eta float64, eIsSaturated bool) (value float64, isZero bool) {
	switch {
	case zeroCount == 0:
		return prod / (1 - eta), false
	case zeroCount == 1 && eIsSaturated:
		return prod, false
	default:
		return 0, true
	}
}

// patchVariableCache replaces e's contribution to its variable's cache: the
// old survey's contribution is removed and the new survey's is folded in,
// branching on whether the old and new surveys are saturated.
func patchVariableCache(g *core.Graph, e *core.Edge, oldEta, newEta float64) {
	v := g.Variable(e.VarIdx)

	var prod *float64
	var zero *int
	if e.Type {
		prod, zero = &v.P, &v.PZero
	} else {
		prod, zero = &v.M, &v.MZero
	}

	oldSat := saturated(oldEta)
	newSat := saturated(newEta)

	switch {
	case !oldSat && !newSat:
		*prod = *prod / (1 - oldEta) * (1 - newEta)
	case !oldSat && newSat:
		*prod = *prod / (1 - oldEta)
		*zero++
	case oldSat && !newSat:
		*zero--
		*prod = *prod * (1 - newEta)
	default: // oldSat && newSat
	}
}
