package metric

import "fmt"

// Composed assembles a Metric from five hooks. The default composition is
//
//	Distance(a, b) = Add(Norm(Subtract(Extract(a), Extract(b))), Inherent(a, b))
//
// Extract reduces an object to a value V in a representation supporting
// subtraction and a norm, Subtract is the vector-space difference on V,
// Norm maps V to the numeric result R, Inherent adds an
// extraction-independent contribution, and Add combines the two terms.
//
// For the composed distance to behave as a proper metric, Subtract must be
// true subtraction on V, Norm must satisfy the norm axioms and Inherent must
// itself be symmetric and non-negative. None of this is checked.
type Composed[T, V, R any] struct {
	Extract  func(T) V
	Subtract func(a, b V) V
	Norm     func(V) R
	Inherent func(a, b T) R
	Add      func(a, b R) R
}

// Distance applies the default composition. A nil hook faults on first use.
func (c Composed[T, V, R]) Distance(a, b T) R {
	return c.Add(c.Norm(c.Subtract(c.Extract(a), c.Extract(b))), c.Inherent(a, b))
}

// Compose validates the hooks and returns the composed metric. Callers that
// prefer zero-value faults at first use can build a Composed literal
// directly.
func Compose[T, V, R any](
	extract func(T) V,
	subtract func(a, b V) V,
	norm func(V) R,
	inherent func(a, b T) R,
	add func(a, b R) R,
) (Composed[T, V, R], error) {
	var zero Composed[T, V, R]
	if extract == nil {
		return zero, fmt.Errorf("metric: extract hook is nil")
	}
	if subtract == nil {
		return zero, fmt.Errorf("metric: subtract hook is nil")
	}
	if norm == nil {
		return zero, fmt.Errorf("metric: norm hook is nil")
	}
	if inherent == nil {
		return zero, fmt.Errorf("metric: inherent hook is nil")
	}
	if add == nil {
		return zero, fmt.Errorf("metric: add hook is nil")
	}
	return Composed[T, V, R]{
		Extract:  extract,
		Subtract: subtract,
		Norm:     norm,
		Inherent: inherent,
		Add:      add,
	}, nil
}

// Then wraps m so every distance passes through fn. It is the decoration
// point for replacing the default composition result with a clamped, shifted
// or rescaled value without re-implementing the hooks.
func Then[T, R any](m Metric[T, R], fn func(R) R) Func[T, R] {
	return func(a, b T) R { return fn(m.Distance(a, b)) }
}

// NoInherent returns an inherent-distance hook that always contributes the
// given zero value, for metrics defined purely by extraction and norm.
func NoInherent[T, R any](zero R) func(a, b T) R {
	return func(T, T) R { return zero }
}
