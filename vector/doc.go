// Package vector supplies the vector-space hooks and standard distance
// metrics the composable metric builder expects. It includes:
//   - Sub: componentwise subtraction for float32 and float64 slices
//   - L2Norm, L1Norm, ChebyshevNorm: norms usable as composition hooks
//   - Euclidean, SqEuclidean, Cosine, Manhattan, Chebyshev: ready metrics
//     satisfying the capability contract
//   - DistanceFunction: name-based resolution of a distance implementation
//
// The float32 L2 path delegates to github.com/viant/vec for SIMD-backed
// magnitude and distance kernels. All pairwise operations require both
// vectors to share the same dimension and panic on a mismatch.
package vector
