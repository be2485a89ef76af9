package core

import "errors"

// Sentinel errors for FactorGraph construction and mutation.
var (
	// ErrNoVariables indicates a DIMACS header or clause set claiming zero variables.
	ErrNoVariables = errors.New("core: factor graph has no variables")

	// ErrVariableOutOfRange indicates a clause literal references a variable
	// outside [1, numVars].
	ErrVariableOutOfRange = errors.New("core: literal references a variable out of range")

	// ErrZeroLiteral indicates a clause contains the literal 0, which DIMACS
	// reserves as the clause terminator and is never a valid variable reference.
	ErrZeroLiteral = errors.New("core: clause contains literal 0")

	// ErrContradiction indicates assigning a variable to a value that
	// conflicts with its existing assignment. Callers treat this as
	// UNSAT-evidence for the current run, not as a crash.
	ErrContradiction = errors.New("core: contradiction — variable already assigned the opposite value")
)
