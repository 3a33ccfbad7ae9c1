package filter

// LocalMaximum marks pixels that dominate their neighborhood. A pixel
// scores 1 when no neighbor is strictly greater than it and at least one
// neighbor is strictly less; every other pixel scores 0.
//
// Flat regions score 0 on purpose: a plateau pixel has no strictly weaker
// neighbor, so the tie-break classifies it as non-maximum. The engine's
// neighborhoods include the center pixel itself; the tie-break depends on
// that, and the center can never compare strictly greater than itself.
type LocalMaximum struct{}

// Name implements Strategy.
func (LocalMaximum) Name() string { return "localmax" }

// Score implements Strategy.
func (LocalMaximum) Score(center float64, neighborhood []float64, n int) float64 {
	hasWeaker := false
	for i := 0; i < n; i++ {
		v := neighborhood[i]
		if v > center {
			return 0
		}
		if v < center {
			hasWeaker = true
		}
	}
	if hasWeaker {
		return 1
	}
	return 0
}
