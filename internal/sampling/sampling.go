// Package sampling implements weighted random selection over a domain
// of candidate indices.
package sampling

import "math/rand"

// Weighted draws an index i from [0, len(weights)) with probability
// weight[i] / sum(weights), via a uniform draw in [0, sum(weights)) and
// a linear scan. Zero-weight entries are valid but never selected.
// Panics if weights is empty or every weight is non-positive.
func Weighted(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("sampling: Weighted called with non-positive total weight")
	}

	draw := rng.Float64() * total
	var running float64
	for i, w := range weights {
		running += w
		if draw < running {
			return i
		}
	}
	// Floating-point rounding can leave draw == total; fall back to the
	// last candidate with non-zero weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	panic("sampling: Weighted found no positive-weight candidate")
}
