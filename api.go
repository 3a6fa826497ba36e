package metric

// Metric is the capability contract for dissimilarity measures: any type
// that can produce a real-like value for an ordered pair of objects.
// T is the object type, R the numeric result representation.
//
// Implementations should be deterministic. The contract does not enforce
// metric axioms; algorithms built on top (e.g. prefer.Lift) state
// non-negativity, symmetry and zero-on-equal as preconditions where their
// guarantees depend on them.
type Metric[T, R any] interface {
	// Distance returns the dissimilarity between a and b.
	Distance(a, b T) R
}

// Func adapts a plain function to the Metric capability.
type Func[T, R any] func(a, b T) R

// Distance implements Metric by calling the function itself.
func (f Func[T, R]) Distance(a, b T) R { return f(a, b) }
