package ingestion

import "math"

// NormalizeVector scales a vector to unit length in place and returns
// it. Zero vectors pass through unchanged; they embed nothing and must
// stay distinguishable as such.
func NormalizeVector(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vector
	}
	norm := float32(math.Sqrt(sumSquares))
	for i := range vector {
		vector[i] /= norm
	}
	return vector
}
