package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sidsat/core"
)

func mustGraph(t *testing.T, numVars int, clauses [][]int) *core.Graph {
	t.Helper()
	g, err := core.NewFactorGraph(numVars, clauses)
	require.NoError(t, err)
	return g
}

func TestNewFactorGraph_Wiring(t *testing.T) {
	g := mustGraph(t, 3, [][]int{{1, 2, 3}, {-1, -2, -3}})

	require.Equal(t, 3, g.NumVariables())
	require.Equal(t, 2, g.NumClauses())
	require.Len(t, g.Edges, 6)

	require.True(t, g.Edge(0).Type)
	require.False(t, g.Edge(3).Type)
	require.Equal(t, 0, g.Edge(0).VarIdx)
	require.Equal(t, 0, g.Edge(0).ClauseIdx)
}

func TestNewFactorGraph_Rejections(t *testing.T) {
	t.Run("zero variables", func(t *testing.T) {
		_, err := core.NewFactorGraph(0, nil)
		require.ErrorIs(t, err, core.ErrNoVariables)
	})
	t.Run("zero literal", func(t *testing.T) {
		_, err := core.NewFactorGraph(2, [][]int{{1, 0}})
		require.ErrorIs(t, err, core.ErrZeroLiteral)
	})
	t.Run("variable out of range", func(t *testing.T) {
		_, err := core.NewFactorGraph(2, [][]int{{1, 5}})
		require.ErrorIs(t, err, core.ErrVariableOutOfRange)
	})
}

func TestAssignVariable_Satisfies(t *testing.T) {
	// clause 0: x1 v x2 ; clause 1: -x1 v x2
	g := mustGraph(t, 2, [][]int{{1, 2}, {-1, 2}})

	touched, err := g.AssignVariable(0, true) // x1 = true
	require.NoError(t, err)

	// clause 0 satisfied and fully disabled; clause 1's -x1 edge falsified,
	// leaving its x2 edge the sole survivor.
	require.True(t, g.Clause(0).Enabled == false)
	require.Contains(t, touched, 1)

	ei, ok := g.ClauseSoleEnabledEdge(1)
	require.True(t, ok)
	require.Equal(t, 1, g.Edge(ei).VarIdx)
}

func TestAssignVariable_Contradiction(t *testing.T) {
	g := mustGraph(t, 1, [][]int{{1}, {-1}})

	_, err := g.AssignVariable(0, true)
	require.NoError(t, err)

	_, err = g.AssignVariable(0, false)
	require.ErrorIs(t, err, core.ErrContradiction)
}

func TestAssignVariable_SameValueIsNoop(t *testing.T) {
	g := mustGraph(t, 1, [][]int{{1}})
	_, err := g.AssignVariable(0, true)
	require.NoError(t, err)

	touched, err := g.AssignVariable(0, true)
	require.NoError(t, err)
	require.Nil(t, touched)
}

func TestIsSAT(t *testing.T) {
	g := mustGraph(t, 2, [][]int{{1, 2}})
	require.False(t, g.IsSAT())

	_, err := g.AssignVariable(0, true)
	require.NoError(t, err)
	require.True(t, g.IsSAT())
}

func TestStoreAssignment(t *testing.T) {
	g := mustGraph(t, 3, [][]int{{1, 2, 3}})
	_, err := g.AssignVariable(0, true)
	require.NoError(t, err)
	g.SetVariableValue(2, true)

	var sb strings.Builder
	require.NoError(t, g.StoreAssignment(&sb))
	require.Equal(t, "1\n0\n1\n", sb.String())
}

func TestFlipVariable_MaintainsTrueLiterals(t *testing.T) {
	g := mustGraph(t, 2, [][]int{{1, 2}})
	g.SetVariableValue(0, false)
	g.SetVariableValue(1, false)
	g.RecomputeClauseTrueLiterals()
	require.Equal(t, 0, g.Clause(0).TrueLiterals)

	transitioned := g.FlipVariable(0) // x1: false -> true, satisfies clause 0
	require.Equal(t, []int{0}, transitioned)
	require.Equal(t, 1, g.Clause(0).TrueLiterals)

	transitioned = g.FlipVariable(0) // back to false
	require.Equal(t, []int{0}, transitioned)
	require.Equal(t, 0, g.Clause(0).TrueLiterals)
}

func TestIterators(t *testing.T) {
	g := mustGraph(t, 3, [][]int{{1, 2}, {2, 3}})
	_, err := g.AssignVariable(1, true) // satisfies both clauses via x2
	require.NoError(t, err)

	it := g.UnassignedVariables()
	var unassigned []int
	for vi, ok := it.Next(); ok; vi, ok = it.Next() {
		unassigned = append(unassigned, vi)
	}
	require.ElementsMatch(t, []int{0, 2}, unassigned)

	ci := g.EnabledClauses()
	_, ok := ci.Next()
	require.False(t, ok)

	ei := g.EnabledEdges()
	_, ok = ei.Next()
	require.False(t, ok)
}
