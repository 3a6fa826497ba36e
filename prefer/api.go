package prefer

// AssociateFunc derives the set of associated objects a primary object is
// compared through (e.g. the category tags of an item). Order is not
// significant; the set is regenerated on every query and never cached.
type AssociateFunc[P, A any] func(P) []A

// EqualFunc reports whether two associated objects denote the same
// dimension when aligning indexed distance vectors.
type EqualFunc[A any] func(a, b A) bool

// ConvertFunc maps the metric's result type into the lift's accumulation
// type. Conversions should be value-preserving; lossy ones silently skew
// scores.
type ConvertFunc[M, R any] func(M) R

// Comparer scores ordered pairs of primary objects against a fixed
// reference baseline. It is the read surface of a Lift and the unit
// decorators wrap.
type Comparer[P, R any] interface {
	// CompareToPRF returns the calibrated distance of the ordered pair
	// (c, d) from the reference pair.
	CompareToPRF(c, d P) R
}
