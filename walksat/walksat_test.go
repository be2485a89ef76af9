package walksat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sidsat/core"
	"github.com/katalvlaran/sidsat/walksat"
)

func mustGraph(t *testing.T, numVars int, clauses [][]int) *core.Graph {
	t.Helper()
	g, err := core.NewFactorGraph(numVars, clauses)
	require.NoError(t, err)
	return g
}

// A single 3-clause, satisfiable by any of seven assignments; WalkSAT must
// find one within maxFlips from any seed.
func TestSolve_FindsModel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		g := mustGraph(t, 3, [][]int{{1, 2, 3}})
		r := rand.New(rand.NewSource(seed))

		outcome, _ := walksat.Solve(g, r, walksat.WithMaxFlips(300*3))
		require.Equal(t, walksat.Sat, outcome)
		require.True(t, g.IsSAT())
	}
}

// A 3-variable formula with a single satisfying assignment (1,1,1).
func TestSolve_UniqueModel(t *testing.T) {
	clauses := [][]int{
		{1, 2, 3}, {1, 2, -3}, {1, -2, 3}, {-1, 2, 3},
		{1, -2, -3}, {-1, 2, -3}, {-1, -2, 3},
	}
	g := mustGraph(t, 3, clauses)
	r := rand.New(rand.NewSource(7))

	outcome, _ := walksat.Solve(g, r, walksat.WithMaxFlips(300*3))
	require.Equal(t, walksat.Sat, outcome)
	require.True(t, g.Variable(0).Value)
	require.True(t, g.Variable(1).Value)
	require.True(t, g.Variable(2).Value)
	require.True(t, g.IsSAT())
}

func TestSolve_CommitsAssignedFlag(t *testing.T) {
	g := mustGraph(t, 3, [][]int{{1, 2, 3}})
	r := rand.New(rand.NewSource(1))

	outcome, _ := walksat.Solve(g, r, walksat.WithMaxFlips(100))
	require.Equal(t, walksat.Sat, outcome)
	for vi := 0; vi < g.NumVariables(); vi++ {
		require.True(t, g.Variable(vi).Assigned)
	}
}

func TestSolve_IndeterminateOnContradictoryUnit(t *testing.T) {
	// Two unit clauses forcing opposite values on the same variable can
	// never be simultaneously satisfied; WalkSAT must exhaust its budget.
	g := mustGraph(t, 1, [][]int{{1}, {-1}})
	r := rand.New(rand.NewSource(1))

	outcome, flips := walksat.Solve(g, r, walksat.WithMaxTries(5), walksat.WithMaxFlips(20))
	require.Equal(t, walksat.Indeterminate, outcome)
	require.Equal(t, 5*20, flips)
}

// TestFlipVariable_SatDeltaMatchesBruteForce exercises the same property
// that makes Fast-WalkSAT's incident-edge break-count scan valid: flipping
// a variable changes the satisfied-clause count by exactly the amount a
// full rescan would report.
func TestFlipVariable_SatDeltaMatchesBruteForce(t *testing.T) {
	g := mustGraph(t, 4, [][]int{{1, 2}, {-2, 3}, {3, -4}, {-1, 4}, {1, 3, 4}})
	r := rand.New(rand.NewSource(9))
	for vi := 0; vi < g.NumVariables(); vi++ {
		g.SetVariableValue(vi, r.Intn(2) == 1)
	}
	g.RecomputeClauseTrueLiterals()

	satCountBefore := countSat(g)
	for vi := 0; vi < g.NumVariables(); vi++ {
		want := bruteBreakCount(g, vi, satCountBefore)

		transitioned := g.FlipVariable(vi)
		got := satCountBefore - countSat(g)
		require.Equal(t, want, got, "variable %d", vi)

		// flip back
		g.FlipVariable(vi)
		_ = transitioned
	}
}

func countSat(g *core.Graph) int {
	n := 0
	for it := g.EnabledClauses(); ; {
		ci, ok := it.Next()
		if !ok {
			break
		}
		if g.Clause(ci).TrueLiterals > 0 {
			n++
		}
	}
	return n
}

// bruteBreakCount recomputes the net decrease in satisfied-clause count a
// flip of vi would cause (negative when the flip satisfies more clauses
// than it breaks) by actually flipping and restoring, independent of the
// Fast-WalkSAT incident-edge shortcut under test.
func bruteBreakCount(g *core.Graph, vi int, satBefore int) int {
	g.FlipVariable(vi)
	satAfter := countSat(g)
	g.FlipVariable(vi)
	return satBefore - satAfter
}
