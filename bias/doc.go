// Package bias computes per-variable magnetizations (H+, H0, H-) from a
// converged Survey Propagation state, and the scalar evalValue used to rank
// variables for decimation.
package bias
