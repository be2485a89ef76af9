package bias

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sidsat/core"
)

// Evaluate computes variable vi's magnetizations from its current survey
// propagation sub-product caches, storing the result on the graph's
// Variable (Hp, Hz, Hm) and returning the same three values.
//
// If the denominator degenerates (every term zero, or NaN from an
// all-saturated neighbourhood) the variable is reported as fully
// unconstrained (Hz = 1) rather than propagating a NaN.
func Evaluate(g *core.Graph, vi int) (hp, hz, hm float64) {
	v := g.Variable(vi)

	p := v.P
	if v.PZero > 0 {
		p = 0
	}
	m := v.M
	if v.MZero > 0 {
		m = 0
	}

	h0 := p * m
	hpRaw := m - h0
	hmRaw := p - h0
	sum := hpRaw + h0 + hmRaw

	if sum == 0 || math.IsNaN(sum) {
		hp, hz, hm = 0, 1, 0
	} else {
		hp, hz, hm = hpRaw/sum, h0/sum, hmRaw/sum
	}

	v.Hp, v.Hz, v.Hm = hp, hz, hm
	return hp, hz, hm
}

// EvalValue is the ranking statistic decimation sorts on: |H+ - H-|.
func EvalValue(hp, hm float64) float64 {
	return math.Abs(hp - hm)
}

// PickValue decides the Boolean value to fix a variable to given its
// magnetizations: true iff H+ > H-, with ties broken uniformly at random
// from the caller's RNG (never math/rand's global source).
func PickValue(hp, hm float64, r *rand.Rand) bool {
	if hp == hm {
		return r.Intn(2) == 1
	}
	return hp > hm
}
