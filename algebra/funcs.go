package algebra

// Funcs assembles a Ring from operations passed as plain function values,
// for numeric representations with no dedicated bundle. A nil field faults
// at first use.
type Funcs[R any] struct {
	ZeroFn func() R
	AddFn  func(a, b R) R
	MulFn  func(a, b R) R
	NegFn  func(a R) R
}

// Zero calls ZeroFn.
func (f Funcs[R]) Zero() R { return f.ZeroFn() }

// Add calls AddFn.
func (f Funcs[R]) Add(a, b R) R { return f.AddFn(a, b) }

// Mul calls MulFn.
func (f Funcs[R]) Mul(a, b R) R { return f.MulFn(a, b) }

// Neg calls NegFn.
func (f Funcs[R]) Neg(a R) R { return f.NegFn(a) }
