package prefer

// Option customizes lift construction.
type Option[A any] func(*options[A])

type options[A any] struct {
	pairKey func(A) any
}

// WithPairKey switches vector alignment from the quadratic predicate scan
// to an associative-map join on the given canonical key. The key must be
// comparable and consistent with the equality predicate: key(a) == key(b)
// exactly when equal(a, b). Scores are identical either way, including
// first-match behavior when several entries share a key pair.
func WithPairKey[A any](key func(A) any) Option[A] {
	return func(o *options[A]) { o.pairKey = key }
}
