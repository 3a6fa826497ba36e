package vector

import (
	"fmt"
	"math"
)

// Float64 twins for hosts whose embeddings are []float64. Shapes mirror the
// float32 surface; the suffix keeps both widths usable side by side.

// checkDims64 panics when a and b disagree on dimension.
func checkDims64(a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vector: dimension mismatch: %d vs %d", len(a), len(b)))
	}
}

// Sub64 returns the componentwise difference a-b as a fresh slice. It panics
// when a and b disagree on dimension.
func Sub64(a, b []float64) []float64 {
	checkDims64(a, b)
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// L2Norm64 returns the Euclidean norm of v.
func L2Norm64(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// L1Norm64 returns the Manhattan norm of v.
func L1Norm64(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += math.Abs(x)
	}
	return sum
}

// Euclidean64 is the L2 distance metric over float64 vectors.
type Euclidean64 struct{}

// Distance returns the Euclidean distance between a and b.
func (Euclidean64) Distance(a, b []float64) float64 {
	checkDims64(a, b)
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Cosine64 is the cosine distance metric over float64 vectors. Vectors must
// have non-zero magnitude.
type Cosine64 struct{}

// Distance returns the cosine distance between a and b.
func (Cosine64) Distance(a, b []float64) float64 {
	checkDims64(a, b)
	var dot, na2, nb2 float64
	for i := range a {
		dot += a[i] * b[i]
		na2 += a[i] * a[i]
		nb2 += b[i] * b[i]
	}
	return 1 - dot/(math.Sqrt(na2)*math.Sqrt(nb2))
}
