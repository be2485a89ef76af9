package decimate

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/sidsat/bias"
	"github.com/katalvlaran/sidsat/core"
)

// ScanUnitClauses returns every currently-enabled clause that already has
// exactly one enabled edge — a unit clause waiting to be propagated. Run
// once at the top of every SID iteration (including the first) so a CNF
// that ships with a pre-existing unit clause has it propagated before
// Survey Propagation is ever invoked.
func ScanUnitClauses(g *core.Graph) []int {
	var out []int
	for it := g.EnabledClauses(); ; {
		ci, ok := it.Next()
		if !ok {
			break
		}
		if g.ClauseEnabledEdgeCount(ci) == 1 {
			out = append(out, ci)
		}
	}
	return out
}

// Propagate runs unit propagation to a fixed point starting from an
// iterative worklist seeded with seed: a clause reduced to zero enabled
// edges is a contradiction; reduced to exactly one forces that literal,
// which cascades by re-queuing every clause AssignVariable reports as
// touched. A clause with two or more enabled edges is left alone.
func Propagate(g *core.Graph, seed []int) error {
	queue := append([]int(nil), seed...)
	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]

		if !g.Clause(ci).Enabled {
			continue
		}
		switch n := g.ClauseEnabledEdgeCount(ci); {
		case n == 0:
			return core.ErrContradiction
		case n == 1:
			ei, _ := g.ClauseSoleEnabledEdge(ci)
			e := g.Edge(ei)
			touched, err := g.AssignVariable(e.VarIdx, e.Type)
			if err != nil {
				return err
			}
			queue = append(queue, touched...)
		}
	}
	return nil
}

// FixTopBiased evaluates and ranks every unassigned variable by
// bias.EvalValue, fixes the top max(1, floor(fraction*|unassigned|)) of
// them, and propagates the consequences of each fix. It returns how many
// variables were actually committed (cascading unit propagation can assign
// variables ahead of their turn, which are then skipped with the ranking
// window extended by one to compensate).
func FixTopBiased(g *core.Graph, fraction float64, r *rand.Rand) (fixed int, err error) {
	var unassigned []int
	for it := g.UnassignedVariables(); ; {
		vi, ok := it.Next()
		if !ok {
			break
		}
		unassigned = append(unassigned, vi)
	}
	if len(unassigned) == 0 {
		return 0, nil
	}

	fixCount := int(math.Floor(fraction * float64(len(unassigned))))
	if fixCount < 1 {
		fixCount = 1
	}

	type ranked struct {
		vi    int
		value float64
	}
	order := make([]ranked, len(unassigned))
	for i, vi := range unassigned {
		hp, _, hm := bias.Evaluate(g, vi)
		order[i] = ranked{vi, bias.EvalValue(hp, hm)}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].value > order[j].value })

	window := fixCount
	for i := 0; i < window && i < len(order); i++ {
		vi := order[i].vi
		if g.Variable(vi).Assigned {
			window++
			continue
		}

		hp, _, hm := bias.Evaluate(g, vi)
		value := bias.PickValue(hp, hm, r)

		touched, aErr := g.AssignVariable(vi, value)
		if aErr != nil {
			return fixed, aErr
		}
		fixed++

		if pErr := Propagate(g, touched); pErr != nil {
			return fixed, pErr
		}
	}
	return fixed, nil
}
