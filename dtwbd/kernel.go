package dtwbd

import "math"

// frameDistance computes the Euclidean distance between two equal-length
// MFCC frames (§4.1). It accumulates in float64 regardless of the
// frames' float32 storage width, per §7's numeric-overflow rule, and is
// symmetric and non-negative by construction.
func frameDistance(x, y []float32) float64 {
	var sumSq float64
	for k := range x {
		d := float64(x[k]) - float64(y[k])
		sumSq += d * d
	}

	return math.Sqrt(sumSq)
}
