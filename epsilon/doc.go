// Package epsilon implements Wynn's ε-algorithm in three levels of hardening
// and the Epsilon-Aitken-Theta hybrid.
//
// The ε table starts from ε_{-1} = 0 and ε_0^{(j)} = S(n+j) and fills columns
// with the rhombus rule
//
//	ε_{k+1}^{(j)} = ε_{k-1}^{(j+1)} + 1 / (ε_k^{(j+1)} − ε_k^{(j)})
//
// Only even columns estimate the limit; Estimate(n, order) returns
// ε_{2·order}^{(0)}, built from S(n), ..., S(n+2·order). ε_2 is Aitken's Δ².
//
// Variants:
//   - Wynn: two rolling columns; any non-finite cell is accel.ErrOverflow.
//   - Patched: Wynn's singular rule. A cell whose two neighbours coincide is
//     kept as a pole, and the cell across it comes from the cross rule; poles
//     that touch each other or the result are an overflow.
//   - Robust: the QUADPACK-style scheme. Works on even columns through the
//     cross rule, scales every comparison by the machine epsilon, stops early
//     when neighbours agree or the table turns irregular, and returns the best
//     estimate seen on the diagonal ending at S(n+2·order), with an error bound.
//   - AitkenTheta: alternates a damped Aitken step and a theta-weighted Aitken
//     step over S(0..n); the order argument selects the damping class.
package epsilon

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'accel'.
func tracer() tracing.Trace {
	return tracing.Select("accel")
}
