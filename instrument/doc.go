// Package instrument decorates metrics and preference comparers with
// Prometheus collectors. Decoration is transparent: wrapped values return
// exactly what the underlying implementation returns, with call counters
// and latency histograms recorded on the side.
package instrument
