// Package metric defines the capability contract for dissimilarity
// measures and a composable builder for assembling them. It includes:
//   - Metric interface and Func adapter over arbitrary object and result types
//   - Composed: Distance as Add(Norm(Subtract(Extract(a), Extract(b))), Inherent(a, b))
//   - Then: post-transform decoration for clamping, shifting or rescaling
//   - Absolute and Discrete scalar metrics as ready building blocks
//
// Subpackages supply vector hooks (vector), numeric operation bundles
// (algebra), preference-calibrated pair comparison (prefer) and Prometheus
// decorators (instrument).
package metric
