package algebra

import "golang.org/x/exp/constraints"

// Number constrains the machine numeric types covered by Numeric.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is the Ring over any machine integer or float type, using the
// built-in operators. For unsigned integers Neg is the modular inverse, so
// the group laws still hold exactly.
type Numeric[N Number] struct{}

// Zero returns N's zero value.
func (Numeric[N]) Zero() N { var zero N; return zero }

// Add returns a+b.
func (Numeric[N]) Add(a, b N) N { return a + b }

// Mul returns a*b.
func (Numeric[N]) Mul(a, b N) N { return a * b }

// Neg returns -a.
func (Numeric[N]) Neg(a N) N { return -a }
