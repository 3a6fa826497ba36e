package algebra

// Ring bundles addition, multiplication and additive inversion over a
// numeric representation R. It is the operation set consumed by algorithms
// that accumulate and align distance values without committing to a concrete
// number type.
//
// Required laws, assumed but never checked: Add is associative and
// commutative with Zero() as its neutral element, Add(x, Neg(x)) equals
// Zero() for all x, and Mul distributes over Add. Bundles violating them
// produce silently meaningless results downstream.
type Ring[R any] interface {
	// Zero returns the additive neutral element.
	Zero() R

	// Add returns a+b.
	Add(a, b R) R

	// Mul returns a*b.
	Mul(a, b R) R

	// Neg returns the additive inverse of a.
	Neg(a R) R
}
