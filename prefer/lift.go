package prefer

import (
	"fmt"

	"github.com/viant/metric"
	"github.com/viant/metric/algebra"
	"github.com/viant/metric/internal/pairvec"
)

// Lift calibrates a metric on associated objects into scalar comparisons of
// primary-object pairs against one fixed reference ordered pair. The
// reference pair, its indexed distance vector and that vector's self-inner
// product are fixed at construction; everything else is recomputed per
// query. P is the primary object type, A the associated object type, R the
// accumulation type.
type Lift[P, A, R any] struct {
	ring      algebra.Ring[R]
	associate AssociateFunc[P, A]
	equal     EqualFunc[A]
	dist      func(a, b A) R
	pairKey   func(A) any

	from  P
	to    P
	ref   pairvec.Vector[A, R]
	norm2 R
}

// New constructs a lift over a metric that already produces values in the
// accumulation type R. The reference vector spans every associated object
// of from paired with every associated object of to; its self-inner product
// is cached as the calibration baseline.
func New[P, A, R any](
	ring algebra.Ring[R],
	associate AssociateFunc[P, A],
	equal EqualFunc[A],
	m metric.Metric[A, R],
	from, to P,
	opts ...Option[A],
) (*Lift[P, A, R], error) {
	identity := func(v R) R { return v }
	return NewConverted[P, A, R, R](ring, associate, equal, m, identity, from, to, opts...)
}

// NewConverted constructs a lift over a metric producing values in M,
// mapped into the accumulation type R by an explicit conversion. It is the
// general form of New for callers whose metric and ring live in different
// numeric representations.
func NewConverted[P, A, M, R any](
	ring algebra.Ring[R],
	associate AssociateFunc[P, A],
	equal EqualFunc[A],
	m metric.Metric[A, M],
	convert ConvertFunc[M, R],
	from, to P,
	opts ...Option[A],
) (*Lift[P, A, R], error) {
	if ring == nil {
		return nil, fmt.Errorf("prefer: ring is nil")
	}
	if associate == nil {
		return nil, fmt.Errorf("prefer: associate function is nil")
	}
	if equal == nil {
		return nil, fmt.Errorf("prefer: equality predicate is nil")
	}
	if m == nil {
		return nil, fmt.Errorf("prefer: metric is nil")
	}
	if convert == nil {
		return nil, fmt.Errorf("prefer: convert function is nil")
	}
	var o options[A]
	for _, opt := range opts {
		opt(&o)
	}
	l := &Lift[P, A, R]{
		ring:      ring,
		associate: associate,
		equal:     equal,
		dist:      func(a, b A) R { return convert(m.Distance(a, b)) },
		pairKey:   o.pairKey,
		from:      from,
		to:        to,
	}
	l.ref = pairvec.Build(associate(from), associate(to), l.dist)
	l.norm2 = l.dot(l.ref, l.ref)
	return l, nil
}

// From returns the first element of the reference pair.
func (l *Lift[P, A, R]) From() P { return l.from }

// To returns the second element of the reference pair.
func (l *Lift[P, A, R]) To() P { return l.to }

// CompareToPRF returns the calibrated distance of the ordered pair (c, d)
// from the reference pair: the cached reference self-inner product minus
// the inner product of the query pair's indexed distance vector with the
// reference vector. Either side associating to an empty set leaves the
// query vector empty, so the result degenerates to the cached self-inner
// product.
func (l *Lift[P, A, R]) CompareToPRF(c, d P) R {
	query := pairvec.Build(l.associate(c), l.associate(d), l.dist)
	inner := l.dot(l.ref, query)
	return l.ring.Add(l.norm2, l.ring.Neg(inner))
}

func (l *Lift[P, A, R]) dot(ref, query pairvec.Vector[A, R]) R {
	if l.pairKey != nil {
		return pairvec.DotKeyed(ref, query, l.ring, l.pairKey)
	}
	return pairvec.Dot(ref, query, l.ring, l.equal)
}
