// Package pairvec implements sparse distance vectors indexed by ordered
// pairs of associated objects, and their inner products under a caller
// supplied Ring. Alignment of two vectors is by an equality predicate over
// the key pairs, with an optional canonical-key map join.
package pairvec

import "github.com/viant/metric/algebra"

// Entry is one component of a pair-indexed vector: the scalar value stored
// for one ordered (From, To) pair of associated objects.
type Entry[A, R any] struct {
	From  A
	To    A
	Value R
}

// Vector is a sparse vector over the product of two associated-object sets.
// Entries follow the build order: the from set outer, the to set inner.
type Vector[A, R any] []Entry[A, R]

// Build computes the full |from| x |to| pair-indexed vector, storing
// dist(f, t) for every f in from paired with every t in to. Either side
// empty yields a nil vector.
func Build[A, R any](from, to []A, dist func(a, b A) R) Vector[A, R] {
	if len(from) == 0 || len(to) == 0 {
		return nil
	}
	out := make(Vector[A, R], 0, len(from)*len(to))
	for _, f := range from {
		for _, t := range to {
			out = append(out, Entry[A, R]{From: f, To: t, Value: dist(f, t)})
		}
	}
	return out
}

// Dot computes the inner product of ref and query under ring, aligning
// dimensions by equal applied componentwise to the key pairs. For each ref
// entry the first query entry whose pair matches contributes
// Mul(refValue, queryValue); unmatched ref entries contribute nothing.
// Either vector empty yields ring.Zero(). Cost is O(|ref| * |query|)
// predicate probes.
func Dot[A, R any](ref, query Vector[A, R], ring algebra.Ring[R], equal func(a, b A) bool) R {
	sum := ring.Zero()
	for i := range ref {
		for j := range query {
			if equal(ref[i].From, query[j].From) && equal(ref[i].To, query[j].To) {
				sum = ring.Add(sum, ring.Mul(ref[i].Value, query[j].Value))
				break
			}
		}
	}
	return sum
}

type joinKey struct {
	from any
	to   any
}

// DotKeyed is Dot with map-join alignment for equality predicates consistent
// with a canonical key: key(a) == key(b) exactly when the predicate holds.
// Keys must be comparable. Semantics match Dot, including first-occurrence
// wins when several query entries share a key pair.
func DotKeyed[A, R any](ref, query Vector[A, R], ring algebra.Ring[R], key func(A) any) R {
	sum := ring.Zero()
	if len(ref) == 0 || len(query) == 0 {
		return sum
	}
	index := make(map[joinKey]R, len(query))
	for i := range query {
		k := joinKey{from: key(query[i].From), to: key(query[i].To)}
		if _, ok := index[k]; !ok {
			index[k] = query[i].Value
		}
	}
	for i := range ref {
		if v, ok := index[joinKey{from: key(ref[i].From), to: key(ref[i].To)}]; ok {
			sum = ring.Add(sum, ring.Mul(ref[i].Value, v))
		}
	}
	return sum
}
