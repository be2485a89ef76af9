package validator

import "errors"

// ErrMalformedSolution indicates a .sol file does not have exactly one "0"
// or "1" line per declared variable.
var ErrMalformedSolution = errors.New("validator: malformed solution file")
