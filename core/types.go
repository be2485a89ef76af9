package core

// Variable is a single CNF variable, 1-indexed to match DIMACS (ID == index+1).
//
// P, M, PZero, and MZero are Survey Propagation's per-variable sub-product
// caches: P is the running product of (1-η) over enabled positive-polarity
// incident edges whose survey is below saturation, PZero counts how many
// such edges are saturated (η == 1) instead; M/MZero are the same for
// negative-polarity edges. Hp/Hz/Hm are the renormalized bias evaluator
// outputs; they sum to 1 once computed. None of these seven fields are
// meaningful before the first SurveyPropagation run that touches this
// variable.
type Variable struct {
	ID       int
	Assigned bool
	Value    bool

	EdgeIdx []int

	P, M         float64
	PZero, MZero int

	Hp, Hz, Hm float64
}

// Clause is a single CNF clause, 1-indexed to match DIMACS.
//
// TrueLiterals caches the count of enabled edges whose literal is currently
// satisfied by the variable assignment. It is only kept accurate while
// WalkSAT is active; decimation/unit propagation rely solely on Enabled
// and the per-edge Enabled flags, never on TrueLiterals.
type Clause struct {
	ID           int
	Enabled      bool
	TrueLiterals int

	EdgeIdx []int
}

// Edge is the incidence between a Variable and a Clause. Type records the
// literal's polarity: true if the variable appears unnegated in the clause,
// false if negated. Survey is the message η_{clause→variable} maintained by
// Survey Propagation, meaningless outside an sp.Run call.
type Edge struct {
	ID        int
	VarIdx    int
	ClauseIdx int
	Type      bool
	Enabled   bool
	Survey    float64
}

// Graph is the factor graph of a CNF formula: three contiguous arenas
// (Vars, Clauses, Edges) wired together by index. The topology — which
// edges exist and what they connect — is immutable after NewFactorGraph;
// only the Enabled flags and variable assignments change over a solver run.
//
// Graph exclusively owns every Variable, Clause, and Edge; every other
// package in this module refers to them by (graph, index) pairs rather than
// holding independent copies.
type Graph struct {
	Vars    []Variable
	Clauses []Clause
	Edges   []Edge
}

// NewFactorGraph builds a Graph from a 0-based-literal-free clause list: each
// clause is a slice of nonzero signed integers, sign encodes polarity,
// magnitude is the 1-indexed variable. numVars must be at least the largest
// variable magnitude referenced.
//
// Complexity: O(numVars + Σ len(clauses[i])).
func NewFactorGraph(numVars int, clauses [][]int) (*Graph, error) {
	if numVars <= 0 {
		return nil, ErrNoVariables
	}

	g := &Graph{
		Vars:    make([]Variable, numVars),
		Clauses: make([]Clause, len(clauses)),
	}
	for i := range g.Vars {
		g.Vars[i].ID = i + 1
	}

	numEdges := 0
	for _, cls := range clauses {
		numEdges += len(cls)
	}
	g.Edges = make([]Edge, 0, numEdges)

	for ci, cls := range clauses {
		g.Clauses[ci] = Clause{ID: ci + 1, Enabled: true}
		for _, lit := range cls {
			if lit == 0 {
				return nil, ErrZeroLiteral
			}
			v := lit
			positive := true
			if v < 0 {
				v = -v
				positive = false
			}
			if v > numVars {
				return nil, ErrVariableOutOfRange
			}
			vi := v - 1

			ei := len(g.Edges)
			g.Edges = append(g.Edges, Edge{
				ID:        ei,
				VarIdx:    vi,
				ClauseIdx: ci,
				Type:      positive,
				Enabled:   true,
			})
			g.Clauses[ci].EdgeIdx = append(g.Clauses[ci].EdgeIdx, ei)
			g.Vars[vi].EdgeIdx = append(g.Vars[vi].EdgeIdx, ei)
		}
	}

	return g, nil
}

// NumVariables reports the total variable count (assigned or not).
func (g *Graph) NumVariables() int { return len(g.Vars) }

// NumClauses reports the total clause count (enabled or not).
func (g *Graph) NumClauses() int { return len(g.Clauses) }

// Variable returns a pointer to the variable at the given 0-based index.
func (g *Graph) Variable(vi int) *Variable { return &g.Vars[vi] }

// Clause returns a pointer to the clause at the given 0-based index.
func (g *Graph) Clause(ci int) *Clause { return &g.Clauses[ci] }

// Edge returns a pointer to the edge at the given index.
func (g *Graph) Edge(ei int) *Edge { return &g.Edges[ei] }
