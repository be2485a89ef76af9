package dimacs

import "errors"

// ErrMalformedCNF wraps any DIMACS parse failure — missing or duplicated
// problem line, a header that disagrees with the literal stream, or a
// non-integer token. Fatal at load; surfaced directly to the caller.
var ErrMalformedCNF = errors.New("dimacs: malformed CNF")
