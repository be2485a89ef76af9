package core

// VariableIter is a restartable, finite cursor over a Graph's unassigned
// variables. It does not materialize a slice; Next rescans lazily.
type VariableIter struct {
	g *Graph
	i int
}

// UnassignedVariables returns an iterator over every currently-unassigned
// variable index.
func (g *Graph) UnassignedVariables() *VariableIter {
	return &VariableIter{g: g}
}

// Next advances the cursor, returning the next unassigned variable's index
// and true, or (0, false) once exhausted.
func (it *VariableIter) Next() (int, bool) {
	for it.i < len(it.g.Vars) {
		vi := it.i
		it.i++
		if !it.g.Vars[vi].Assigned {
			return vi, true
		}
	}
	return 0, false
}

// ClauseIter is a restartable cursor over a Graph's enabled clauses.
type ClauseIter struct {
	g *Graph
	i int
}

// EnabledClauses returns an iterator over every currently-enabled clause
// index.
func (g *Graph) EnabledClauses() *ClauseIter {
	return &ClauseIter{g: g}
}

// Next advances the cursor, returning the next enabled clause's index and
// true, or (0, false) once exhausted.
func (it *ClauseIter) Next() (int, bool) {
	for it.i < len(it.g.Clauses) {
		ci := it.i
		it.i++
		if it.g.Clauses[ci].Enabled {
			return ci, true
		}
	}
	return 0, false
}

// EdgeIter is a restartable cursor over enabled edges, either every edge of
// the graph (range mode) or a specific incidence list (list mode, used for
// a single variable's or clause's edges). Either way disabled edges are
// skipped inline rather than filtered into a new slice.
type EdgeIter struct {
	g        *Graph
	list     []int
	rangeLen int
	i        int
}

// EnabledEdges returns an iterator over every enabled edge in the graph.
func (g *Graph) EnabledEdges() *EdgeIter {
	return &EdgeIter{g: g, rangeLen: len(g.Edges)}
}

// EnabledEdgesOfVariable returns an iterator over the enabled edges incident
// to the variable at index vi.
func (g *Graph) EnabledEdgesOfVariable(vi int) *EdgeIter {
	return &EdgeIter{g: g, list: g.Vars[vi].EdgeIdx}
}

// EnabledEdgesOfClause returns an iterator over the enabled edges incident
// to the clause at index ci.
func (g *Graph) EnabledEdgesOfClause(ci int) *EdgeIter {
	return &EdgeIter{g: g, list: g.Clauses[ci].EdgeIdx}
}

// Next advances the cursor, returning the next enabled edge's index and
// true, or (0, false) once exhausted.
func (it *EdgeIter) Next() (int, bool) {
	if it.list != nil {
		for it.i < len(it.list) {
			ei := it.list[it.i]
			it.i++
			if it.g.Edges[ei].Enabled {
				return ei, true
			}
		}
		return 0, false
	}
	for it.i < it.rangeLen {
		ei := it.i
		it.i++
		if it.g.Edges[ei].Enabled {
			return ei, true
		}
	}
	return 0, false
}
