package walksat

import (
	"math/rand"

	"github.com/katalvlaran/sidsat/core"
)

// unsatSet is an O(1)-add/remove/pick working set of clause indices,
// backed by a dense slice plus a position index so WalkSAT's inner loop
// never rescans the whole sub-formula to find an unsatisfied clause.
type unsatSet struct {
	list []int
	pos  map[int]int
}

func newUnsatSet() *unsatSet {
	return &unsatSet{pos: make(map[int]int)}
}

func (s *unsatSet) add(ci int) {
	if _, ok := s.pos[ci]; ok {
		return
	}
	s.pos[ci] = len(s.list)
	s.list = append(s.list, ci)
}

func (s *unsatSet) remove(ci int) {
	i, ok := s.pos[ci]
	if !ok {
		return
	}
	last := len(s.list) - 1
	s.list[i] = s.list[last]
	s.pos[s.list[i]] = i
	s.list = s.list[:last]
	delete(s.pos, ci)
}

func (s *unsatSet) empty() bool { return len(s.list) == 0 }

func (s *unsatSet) pick(r *rand.Rand) int {
	return s.list[r.Intn(len(s.list))]
}

// Solve runs WalkSAT on the graph's current sub-formula — every unassigned
// variable and enabled clause/edge. On Sat it commits a satisfying Value to
// every previously-unassigned variable (Assigned is set so core.Graph.IsSAT
// and StoreAssignment see it); on Indeterminate the graph's variable values
// are left at whatever the final exhausted try set them to, which the
// caller must not trust.
//
// It returns the terminal outcome and the total number of flips performed
// across every try, for the caller's metrics.
func Solve(g *core.Graph, r *rand.Rand, opts ...Option) (Outcome, int) {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	var unassigned []int
	for it := g.UnassignedVariables(); ; {
		vi, ok := it.Next()
		if !ok {
			break
		}
		unassigned = append(unassigned, vi)
	}
	if len(unassigned) == 0 {
		return Sat, 0
	}

	totalFlips := 0
	for try := 1; try <= p.MaxTries; try++ {
		for _, vi := range unassigned {
			g.SetVariableValue(vi, r.Intn(2) == 1)
		}
		g.RecomputeClauseTrueLiterals()

		unsat := newUnsatSet()
		for it := g.EnabledClauses(); ; {
			ci, ok := it.Next()
			if !ok {
				break
			}
			if g.Clause(ci).TrueLiterals == 0 {
				unsat.add(ci)
			}
		}

		for flip := 0; flip < p.MaxFlips; flip++ {
			if unsat.empty() {
				commitAssignment(g, unassigned)
				return Sat, totalFlips
			}
			totalFlips++

			ci := unsat.pick(r)
			vi := chooseFlip(g, ci, p.Noise, r)

			for _, tci := range g.FlipVariable(vi) {
				if g.Clause(tci).TrueLiterals == 0 {
					unsat.add(tci)
				} else {
					unsat.remove(tci)
				}
			}
		}
	}
	return Indeterminate, totalFlips
}

func commitAssignment(g *core.Graph, unassigned []int) {
	for _, vi := range unassigned {
		g.Variable(vi).Assigned = true
	}
}

// chooseFlip picks which variable of clause ci to flip: the minimum
// break-count variable(s), with a noise-driven chance of picking uniformly
// from the whole clause instead.
func chooseFlip(g *core.Graph, ci int, noise float64, r *rand.Rand) int {
	vars := clauseVariables(g, ci)

	minB := -1
	breaks := make([]int, len(vars))
	for i, vi := range vars {
		b := breakCount(g, vi)
		breaks[i] = b
		if minB == -1 || b < minB {
			minB = b
		}
	}

	if minB != 0 && r.Float64() <= noise {
		return vars[r.Intn(len(vars))]
	}

	var best []int
	for i, vi := range vars {
		if breaks[i] == minB {
			best = append(best, vi)
		}
	}
	return best[r.Intn(len(best))]
}

// breakCount counts enabled clauses currently satisfied only by vi (via an
// edge whose literal vi's current value makes true, on a clause with
// exactly one true literal) — a direct incident-edge scan rather than a
// flip-and-flip-back rescan.
func breakCount(g *core.Graph, vi int) int {
	v := g.Variable(vi)
	n := 0
	for it := g.EnabledEdgesOfVariable(vi); ; {
		ei, ok := it.Next()
		if !ok {
			break
		}
		e := g.Edge(ei)
		if v.Value == e.Type && g.Clause(e.ClauseIdx).TrueLiterals == 1 {
			n++
		}
	}
	return n
}

func clauseVariables(g *core.Graph, ci int) []int {
	var vars []int
	for it := g.EnabledEdgesOfClause(ci); ; {
		ei, ok := it.Next()
		if !ok {
			break
		}
		vars = append(vars, g.Edge(ei).VarIdx)
	}
	return vars
}
