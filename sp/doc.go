// Package sp implements Survey Propagation: the message-passing fixed-point
// iteration that estimates, for every (clause, variable) incidence, the
// probability that the clause forces the variable to satisfy it.
//
// The update rule is run clause-by-clause in two passes so that no edge's
// contribution is ever recomputed from its neighbours in more than O(1):
// per-variable sub-product caches (Graph.Vars[i].P/M/PZero/MZero) stand in
// for the naive O(degree) product, and a second, smaller product trick does
// the same at the clause level. See Run for the outer loop and updateClause
// for the per-clause two-pass update.
package sp
