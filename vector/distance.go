package vector

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/viant/vec/search"
)

// DistanceFunction enumerates the distance metrics this package ships.
type DistanceFunction string

const (
	DistanceFunctionCosine      DistanceFunction = "cosine"
	DistanceFunctionEuclidean   DistanceFunction = "euclidean"
	DistanceFunctionSqEuclidean DistanceFunction = "sqeuclidean"
	DistanceFunctionManhattan   DistanceFunction = "manhattan"
	DistanceFunctionChebyshev   DistanceFunction = "chebyshev"
)

// DistanceFunc computes the distance between two vectors.
type DistanceFunc func(a, b []float32) float32

// checkDims panics when a and b disagree on dimension.
func checkDims(a, b []float32) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vector: dimension mismatch: %d vs %d", len(a), len(b)))
	}
}

// Function resolves the callable distance implementation, or nil for an
// unknown name.
func (d DistanceFunction) Function() DistanceFunc {
	switch d {
	case DistanceFunctionCosine:
		return Cosine{}.Distance
	case DistanceFunctionEuclidean:
		return Euclidean{}.Distance
	case DistanceFunctionSqEuclidean:
		return SqEuclidean{}.Distance
	case DistanceFunctionManhattan:
		return Manhattan{}.Distance
	case DistanceFunctionChebyshev:
		return Chebyshev{}.Distance
	default:
		return nil
	}
}

// Euclidean is the L2 distance metric.
type Euclidean struct{}

// Distance returns the Euclidean distance between a and b.
func (Euclidean) Distance(a, b []float32) float32 {
	checkDims(a, b)
	return search.Float32s(a).EuclideanDistance(b)
}

// SqEuclidean is the squared L2 distance metric. It skips the square root,
// which preserves ordering and keeps inner-product accumulation cheap. It is
// not a true metric (the triangle inequality fails), so compositions relying
// on metric axioms should prefer Euclidean.
type SqEuclidean struct{}

// Distance returns the squared Euclidean distance between a and b.
func (SqEuclidean) Distance(a, b []float32) float32 {
	checkDims(a, b)
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Cosine is the cosine distance metric (1 - cosine similarity). Vectors
// must have non-zero magnitude.
type Cosine struct{}

// Distance returns the cosine distance between a and b.
func (Cosine) Distance(a, b []float32) float32 {
	checkDims(a, b)
	return search.Float32s(a).CosineDistance(b)
}

// Manhattan is the L1 distance metric.
type Manhattan struct{}

// Distance returns the Manhattan distance between a and b.
func (Manhattan) Distance(a, b []float32) float32 {
	checkDims(a, b)
	var sum float32
	for i := range a {
		sum += math32.Abs(a[i] - b[i])
	}
	return sum
}

// Chebyshev is the L-infinity distance metric.
type Chebyshev struct{}

// Distance returns the largest absolute componentwise difference.
func (Chebyshev) Distance(a, b []float32) float32 {
	checkDims(a, b)
	var max float32
	for i := range a {
		if d := math32.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
