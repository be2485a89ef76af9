// Package validator re-checks a solver's emitted .sol assignment against
// the original DIMACS CNF it was asked to solve, independent of however
// the assignment was produced.
package validator
