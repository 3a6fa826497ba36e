// Package algebra defines the Ring capability bundling the numeric
// operations generic scoring algorithms need, plus ready bundles:
//   - Numeric: any machine integer or float type
//   - Rat, Float: arbitrary precision via math/big
//   - Funcs: operations passed as plain function values
//
// The ring laws (associative commutative addition with Zero as identity,
// Neg as additive inverse, multiplication distributing over addition) are
// documented preconditions, never validated at runtime.
package algebra
