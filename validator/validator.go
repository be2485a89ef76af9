package validator

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sidsat/dimacs"
)

// Validate parses cnf as DIMACS and solution as one "0" or "1" line per
// variable in index order, then reports whether every clause of the CNF is
// satisfied by that assignment. A malformed CNF or solution file is
// reported as an error, never as a silent "false".
func Validate(cnf io.Reader, solution io.Reader) (bool, error) {
	numVars, clauses, err := dimacs.Parse(cnf)
	if err != nil {
		return false, fmt.Errorf("validator: parsing cnf: %w", err)
	}

	values, err := parseSolution(solution, numVars)
	if err != nil {
		return false, err
	}

	for _, clause := range clauses {
		if !clauseSatisfied(clause, values) {
			return false, nil
		}
	}
	return true, nil
}

func clauseSatisfied(clause []int, values []bool) bool {
	for _, lit := range clause {
		v := lit
		positive := true
		if v < 0 {
			v = -v
			positive = false
		}
		if values[v-1] == positive {
			return true
		}
	}
	return false
}

func parseSolution(r io.Reader, numVars int) ([]bool, error) {
	values := make([]bool, 0, numVars)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		switch line {
		case "0":
			values = append(values, false)
		case "1":
			values = append(values, true)
		default:
			return nil, fmt.Errorf("%w: invalid line %q", ErrMalformedSolution, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSolution, err)
	}
	if len(values) != numVars {
		return nil, fmt.Errorf("%w: expected %d variable values, got %d", ErrMalformedSolution, numVars, len(values))
	}
	return values, nil
}
