// Package walksat implements the WalkSAT stochastic local-search fallback
// invoked once Survey Propagation's surveys collapse to the paramagnetic
// state. It operates only on the residual sub-formula: unassigned
// variables, enabled clauses, enabled edges.
package walksat
