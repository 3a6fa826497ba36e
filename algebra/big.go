package algebra

import "math/big"

// Rat is the exact Ring over *big.Rat. Every operation allocates a fresh
// result and never mutates its operands, so values can be shared freely.
type Rat struct{}

// Zero returns the rational 0/1.
func (Rat) Zero() *big.Rat { return new(big.Rat) }

// Add returns a+b.
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Mul returns a*b.
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Neg returns -a.
func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Float is the Ring over *big.Float. Results are freshly allocated at the
// larger of the operands' precisions; operands are never mutated. Unlike
// Rat it rounds, so exactness guarantees downstream hold only up to that
// rounding.
type Float struct{}

// Zero returns a big.Float 0.
func (Float) Zero() *big.Float { return new(big.Float) }

// Add returns a+b.
func (Float) Add(a, b *big.Float) *big.Float { return new(big.Float).Add(a, b) }

// Mul returns a*b.
func (Float) Mul(a, b *big.Float) *big.Float { return new(big.Float).Mul(a, b) }

// Neg returns -a.
func (Float) Neg(a *big.Float) *big.Float { return new(big.Float).Neg(a) }
