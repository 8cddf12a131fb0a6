// core/sampler/probmap.go
package sampler

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// ProbMap holds one sampling weight per sequence position.
type ProbMap []float64

// Draw picks an index in [lo, hi) with probability proportional to
// p[lo:hi]. The slice is renormalized on every call since decays change it.
// If the slice carries no usable mass (zero, NaN or Inf sum) the draw falls
// back to uniform over the range and degenerate is true.
func (p ProbMap) Draw(rng *rand.Rand, lo, hi int) (idx int, degenerate bool) {
	w := p[lo:hi]
	total := floats.Sum(w)
	if !(total > 0) || math.IsInf(total, 0) {
		return lo + rng.IntN(hi-lo), true
	}
	u := rng.Float64()
	acc := 0.0
	for i, x := range w {
		acc += x / total
		if u < acc {
			return lo + i, false
		}
	}
	// u landed in the rounding gap above the last cumulative value
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] > 0 {
			return lo + i, false
		}
	}
	return hi - 1, false
}

// Decay multiplies the weights of [start, stop) by f.
func (p ProbMap) Decay(start, stop int, f float64) {
	floats.Scale(f, p[start:stop])
}
