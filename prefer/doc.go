// Package prefer lifts a metric on associated objects into calibrated
// scalar comparisons of primary-object pairs against one fixed reference
// pair. A Lift indexes the pairwise distances between the reference pair's
// associated-object sets once, caches that vector and its self-inner
// product, and then scores arbitrary ordered pairs by how little their own
// indexed distances align with the reference:
//
//	CompareToPRF(c, d) = norm2(ref) - <ref, indexed(c, d)>
//
// Alignment is by a caller-supplied equality predicate over associated
// objects, applied componentwise to the ordered key pairs, never by
// structural or hash equality. Identical distance values under different
// keys therefore do not align.
//
// Features:
//   - caller-chosen numeric representation via an algebra.Ring bundle
//   - explicit conversion between the metric's result type and the
//     accumulation type (NewConverted)
//   - optional map-join alignment for key-consistent predicates (WithPairKey)
//   - a constructed Lift is immutable; concurrent queries are safe when the
//     injected functions are
//
// When the supplied ring satisfies the group laws and the metric behaves as
// a proper metric consistent with the equality predicate, scores are
// non-negative and the reference pair scores zero. Neither condition is
// checked; violating them yields meaningless numbers, not errors.
package prefer
