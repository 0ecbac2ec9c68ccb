// Package theta implements Brezinski's θ algorithm, Lubkin's W transform and
// three Ford-Sidi transformations.
//
// All tables are filled iteratively or through a memo, so the cost grows
// polynomially with the order rather than with the call tree of the
// textbook recursions.
//
//   - Brezinski: odd columns follow the ε rule, even columns the θ rule
//
//     θ_{2k+1}^{(j)} = θ_{2k−1}^{(j+1)} + 1/Δθ_{2k}^{(j)}
//     θ_{2k+2}^{(j)} = θ_{2k}^{(j+1)} + Δθ_{2k}^{(j+1)}·Δθ_{2k+1}^{(j+1)} / Δ²θ_{2k+1}^{(j)}
//
//   - Lubkin: each level maps four neighbours W0..W3 to
//     W1 − ΔW1·ΔW0·Δ²W1 / (ΔW2·Δ²W0 − ΔW0·Δ²W1).
//   - FordSidi1 and FordSidi3: the E process of Ford and Sidi, which fits
//     S(m) = S + Σ_i β_i g_i(m). FordSidi1 takes g_i(m) = S(m) − Shanks_i(m)
//     and recurses with a memo; FordSidi3 takes g_i(m) = a(m)(m+1)^{2−i}
//     and fills arrays level by level, which reproduces Levin's u transform
//     with β = 1.
//   - FordSidi2: a single Aitken step at the nearest index at or below n
//     whose second difference is non-zero.
//
// Order 0 returns S(n); otherwise n = 0 is accel.ErrDomain.
package theta

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// tracer traces with key 'accel'.
func tracer() tracing.Trace {
	return tracing.Select("accel")
}

// prologue validates n and order and serves order 0. done reports whether
// v is the final answer.
func prologue[T accel.Scalar](name string, src accel.Source[T], n, order int) (v T, done bool, err error) {
	if err = accel.CheckArgs(name, n, order); err != nil {
		return 0, true, err
	}
	if order == 0 {
		v, err = src.PartialSum(n)
		return v, true, err
	}
	if n == 0 {
		return 0, true, fmt.Errorf("%s: n must be positive: %w", name, accel.ErrDomain)
	}
	return 0, false, nil
}
