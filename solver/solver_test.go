package solver_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sidsat/core"
	"github.com/katalvlaran/sidsat/solver"
)

func mustGraph(t *testing.T, numVars int, clauses [][]int) *core.Graph {
	t.Helper()
	g, err := core.NewFactorGraph(numVars, clauses)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// A small satisfiable formula where survey propagation converges to
// near-zero surveys; the paramagnetic check then hands the formula to
// WalkSAT, and either SAT route must leave a valid assignment.
func TestSID_SmallSAT(t *testing.T) {
	g := mustGraph(t, 3, [][]int{{1, 2, 3}, {-1, -2, -3}})

	res := solver.SID(g, zerolog.Nop(), solver.WithSeed(1), solver.WithDecimationFraction(0.5))
	if res.Outcome != solver.Sat && res.Outcome != solver.SatViaWalksat {
		t.Fatalf("outcome = %s, want Sat or SatViaWalksat", res.Outcome)
	}
	if !g.IsSAT() {
		t.Fatal("graph not SAT after SID returned a SAT outcome")
	}
}

// A unit clause and its negation contradict via unit propagation before
// survey propagation ever runs.
func TestSID_UnitClauseContradiction(t *testing.T) {
	g := mustGraph(t, 1, [][]int{{1}, {-1}})

	res := solver.SID(g, zerolog.Nop(), solver.WithSeed(1))
	if res.Outcome != solver.Contradiction {
		t.Fatalf("outcome = %s, want Contradiction", res.Outcome)
	}
}

// Unit propagation forces x1 before survey propagation ever runs, leaving
// a residual clause {2,3} that UP alone cannot resolve (neither literal is
// unit); survey propagation trivializes on that residual and WalkSAT
// finishes the job.
func TestSID_UnitPropagationLeavesResidualForWalksat(t *testing.T) {
	g := mustGraph(t, 3, [][]int{{1}, {1, -2}, {2, 3}})

	res := solver.SID(g, zerolog.Nop(), solver.WithSeed(1))
	if res.Outcome != solver.Sat && res.Outcome != solver.SatViaWalksat {
		t.Fatalf("outcome = %s, want Sat or SatViaWalksat", res.Outcome)
	}
	if !g.Variable(0).Value {
		t.Fatal("x1 should be true")
	}
}

// A uniquely satisfying assignment (1,1,1) among the eight possible
// assignments to three variables.
func TestSID_UniqueModel(t *testing.T) {
	clauses := [][]int{
		{1, 2, 3}, {1, 2, -3}, {1, -2, 3}, {-1, 2, 3},
		{1, -2, -3}, {-1, 2, -3}, {-1, -2, 3},
	}
	g := mustGraph(t, 3, clauses)

	res := solver.SID(g, zerolog.Nop(), solver.WithSeed(42), solver.WithDecimationFraction(0.5))
	if res.Outcome != solver.Sat && res.Outcome != solver.SatViaWalksat {
		t.Fatalf("outcome = %s, want Sat or SatViaWalksat", res.Outcome)
	}
	if !g.IsSAT() {
		t.Fatal("graph not SAT")
	}
	if !(g.Variable(0).Value && g.Variable(1).Value && g.Variable(2).Value) {
		t.Fatalf("assignment = (%v,%v,%v), want (true,true,true)",
			g.Variable(0).Value, g.Variable(1).Value, g.Variable(2).Value)
	}
}

// Determinism under a fixed seed: two independent runs over fresh graphs
// built from the same CNF must reach the same outcome and assignment.
func TestSID_DeterministicUnderSeed(t *testing.T) {
	clauses := [][]int{{1, 2, 3}, {-1, 2, -3}, {1, -2, 3}, {-1, -2, -3}}

	run := func() (solver.Outcome, []bool) {
		g := mustGraph(t, 3, clauses)
		res := solver.SID(g, zerolog.Nop(), solver.WithSeed(123), solver.WithDecimationFraction(0.25))
		vals := make([]bool, g.NumVariables())
		for i := range vals {
			vals[i] = g.Variable(i).Value
		}
		return res.Outcome, vals
	}

	o1, v1 := run()
	o2, v2 := run()
	if o1 != o2 {
		t.Fatalf("outcome mismatch: %s vs %s", o1, o2)
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("variable %d mismatch: %v vs %v", i, v1[i], v2[i])
		}
	}
}

func TestSID_StatsAccumulate(t *testing.T) {
	g := mustGraph(t, 3, [][]int{{1}, {1, -2}, {2, 3}})
	res := solver.SID(g, zerolog.Nop(), solver.WithSeed(1))
	if res.Stats.SIDTotalIterations < 1 {
		t.Fatalf("SIDTotalIterations = %d, want >= 1", res.Stats.SIDTotalIterations)
	}
	if res.RunID == "" {
		t.Fatal("RunID should not be empty")
	}
}
