package metric

import "golang.org/x/exp/constraints"

// Absolute is the |a-b| metric over signed machine numerics.
type Absolute[N constraints.Signed | constraints.Float] struct{}

// Distance returns the absolute difference between a and b.
func (Absolute[N]) Distance(a, b N) N {
	if a < b {
		return b - a
	}
	return a - b
}

// Discrete is the 0/1 metric: zero for equal values, one otherwise.
type Discrete[T comparable] struct{}

// Distance returns 0 when a == b and 1 otherwise.
func (Discrete[T]) Distance(a, b T) int {
	if a == b {
		return 0
	}
	return 1
}
