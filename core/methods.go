package core

import (
	"bufio"
	"fmt"
	"io"
)

// IsSAT reports whether every clause currently has a satisfying incidence:
// disabled clauses are satisfied by construction (invariant 2); enabled
// clauses are rechecked directly against the current assignment. Linear in
// edges.
func (g *Graph) IsSAT() bool {
	for ci := range g.Clauses {
		c := &g.Clauses[ci]
		if !c.Enabled {
			continue
		}
		satisfied := false
		for _, ei := range c.EdgeIdx {
			e := &g.Edges[ei]
			v := &g.Vars[e.VarIdx]
			if v.Assigned && v.Value == e.Type {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// StoreAssignment writes one line per variable, in index order, "1" for
// true and "0" for false — variables never touched by an assignment or a
// WalkSAT flip are written as "0".
func (g *Graph) StoreAssignment(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range g.Vars {
		bit := byte('0')
		if g.Vars[i].Value {
			bit = '1'
		}
		if err := bw.WriteByte(bit); err != nil {
			return fmt.Errorf("core: writing assignment: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("core: writing assignment: %w", err)
		}
	}
	return bw.Flush()
}

// ClauseEnabledEdgeCount counts the enabled edges on clause ci. Θ(degree(c)).
func (g *Graph) ClauseEnabledEdgeCount(ci int) int {
	n := 0
	for _, ei := range g.Clauses[ci].EdgeIdx {
		if g.Edges[ei].Enabled {
			n++
		}
	}
	return n
}

// ClauseSoleEnabledEdge returns the single enabled edge of clause ci, if
// exactly one exists.
func (g *Graph) ClauseSoleEnabledEdge(ci int) (ei int, ok bool) {
	sole := -1
	for _, e := range g.Clauses[ci].EdgeIdx {
		if g.Edges[e].Enabled {
			if sole != -1 {
				return -1, false
			}
			sole = e
		}
	}
	if sole == -1 {
		return -1, false
	}
	return sole, true
}

// disableClause marks clause ci (and every one of its still-enabled edges)
// disabled. Called when a variable's value satisfies the clause.
func (g *Graph) disableClause(ci int) {
	c := &g.Clauses[ci]
	if !c.Enabled {
		return
	}
	c.Enabled = false
	for _, ei := range c.EdgeIdx {
		g.Edges[ei].Enabled = false
	}
}

// AssignVariable fixes variable vi to value. If vi is already assigned to
// the opposite value this reports ErrContradiction; assigning the same
// value again is a no-op, so a unit-propagation pass either assigns
// something new, reports a contradiction, or leaves the graph unchanged.
// On success it disables every incident edge whose literal the new value
// falsifies (and the clause entirely where the value satisfies it),
// returning the indices of clauses that lost an edge — candidates for the
// caller's unit-propagation worklist.
func (g *Graph) AssignVariable(vi int, value bool) (touchedClauses []int, err error) {
	v := &g.Vars[vi]
	if v.Assigned {
		if v.Value != value {
			return nil, ErrContradiction
		}
		return nil, nil
	}
	v.Assigned = true
	v.Value = value

	for _, ei := range v.EdgeIdx {
		e := &g.Edges[ei]
		if !e.Enabled {
			continue
		}
		if e.Type == value {
			g.disableClause(e.ClauseIdx)
		} else {
			e.Enabled = false
			touchedClauses = append(touchedClauses, e.ClauseIdx)
		}
	}
	return touchedClauses, nil
}

// FlipVariable toggles an unassigned variable's Value (used by WalkSAT,
// which never commits through AssignVariable), incrementally maintaining
// every incident enabled clause's TrueLiterals cache. It returns the
// indices of clauses whose satisfied/unsatisfied status changed as a
// result — the "Fast-WalkSAT" signal used to maintain the unsat working set
// without a full rescan.
func (g *Graph) FlipVariable(vi int) []int {
	v := &g.Vars[vi]
	oldValue := v.Value
	newValue := !oldValue

	var transitioned []int
	for _, ei := range v.EdgeIdx {
		e := &g.Edges[ei]
		if !e.Enabled {
			continue
		}
		wasTrue := oldValue == e.Type
		isTrue := newValue == e.Type
		if wasTrue == isTrue {
			continue
		}
		c := &g.Clauses[e.ClauseIdx]
		if isTrue {
			c.TrueLiterals++
			if c.TrueLiterals == 1 {
				transitioned = append(transitioned, e.ClauseIdx)
			}
		} else {
			c.TrueLiterals--
			if c.TrueLiterals == 0 {
				transitioned = append(transitioned, e.ClauseIdx)
			}
		}
	}
	v.Value = newValue
	return transitioned
}

// SetVariableValue overwrites a variable's Value without touching Assigned
// or any cache — used by WalkSAT to seed its random starting assignment
// before RecomputeClauseTrueLiterals establishes the cache.
func (g *Graph) SetVariableValue(vi int, value bool) {
	g.Vars[vi].Value = value
}

// RecomputeClauseTrueLiterals rebuilds every enabled clause's TrueLiterals
// cache from scratch against the current Value of every variable,
// regardless of Assigned. WalkSAT calls this once after seeding its random
// initial assignment; thereafter FlipVariable maintains it incrementally.
func (g *Graph) RecomputeClauseTrueLiterals() {
	for ci := range g.Clauses {
		c := &g.Clauses[ci]
		if !c.Enabled {
			continue
		}
		count := 0
		for _, ei := range c.EdgeIdx {
			e := &g.Edges[ei]
			if !e.Enabled {
				continue
			}
			if g.Vars[e.VarIdx].Value == e.Type {
				count++
			}
		}
		c.TrueLiterals = count
	}
}
