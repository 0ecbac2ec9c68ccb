// Package accel defines the contracts shared by every convergence-acceleration
// transform in this module: the Scalar constraint, the Source of terms and
// partial sums, the Algorithm interface and the two error kinds.
//
// A transform takes a slowly convergent sequence of partial sums
//
//	S(n) = a(0) + a(1) + ... + a(n)
//
// and produces an estimate of lim S(n) from a small window of the sequence.
// Each family lives in its own package (shanks, epsilon, levin, richardson,
// wynn, theta); this package holds what they have in common:
//
//   - Source[T]     term and partial-sum access, ErrDomain on negative indices
//   - Algorithm[T]  Estimate(n, order); order 0 always returns S(n) unchanged
//   - ErrDomain     invalid n, order or parameter combination
//   - ErrOverflow   non-finite intermediate or final value
//   - Sweep         concurrent evaluation of an (n, order) grid
//
// Working tables are allocated per Estimate call and never outlive it, so an
// Algorithm is safe for concurrent use as long as its Source is.
package accel

import "github.com/npillmayer/schuko/tracing"

// tracer traces to the global tracer.
func tracer() tracing.Trace {
	return tracing.Select("accel")
}
