// Package core defines the FactorGraph: the bipartite variable/clause graph
// that every other package in this module operates on.
//
// A FactorGraph owns three contiguous arenas — variables, clauses, and
// edges — and never reallocates or reorders them after construction.
// Neighbours are referenced by index, not pointer, so the graph has no
// reference cycles and traversal stays cache-friendly. Only two kinds of
// state change after construction: a variable's assignment, and the
// enabled/disabled flags on clauses and edges. Topology itself is
// immutable.
//
//	go get github.com/katalvlaran/sidsat/core
package core
