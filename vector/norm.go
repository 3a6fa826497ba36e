package vector

import (
	"github.com/chewxy/math32"
	"github.com/viant/vec/search"
)

// Sub returns the componentwise difference a-b as a fresh slice. It panics
// when a and b disagree on dimension.
func Sub(a, b []float32) []float32 {
	checkDims(a, b)
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// L2Norm returns the Euclidean norm of v.
func L2Norm(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

// L1Norm returns the Manhattan norm of v.
func L1Norm(v []float32) float32 {
	var sum float32
	for _, x := range v {
		sum += math32.Abs(x)
	}
	return sum
}

// ChebyshevNorm returns the maximum absolute component of v.
func ChebyshevNorm(v []float32) float32 {
	var max float32
	for _, x := range v {
		if a := math32.Abs(x); a > max {
			max = a
		}
	}
	return max
}
