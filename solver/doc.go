// Package solver orchestrates the Survey-Inspired Decimation loop: Survey
// Propagation, bias evaluation, decimation with cascading unit propagation,
// and the WalkSAT fallback once surveys collapse to the paramagnetic state.
package solver
