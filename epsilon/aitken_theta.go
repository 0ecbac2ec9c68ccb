package epsilon

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// AitkenTheta is the Epsilon-Aitken-Theta hybrid.
//
// Each round k maps the current sequence x through two Aitken-type steps:
//
//	y_i = x_{i+1} − c_k·Δx_i·Δx_{i+1} / (Δx_{i+1} − Δx_i)
//	z_i = γ_k·y_i + λ_k·(y_{i+1} + Δy_i·Δy_{i+1} / (Δy_i − Δy_{i+1}))
//
// dropping four elements per round, until fewer than five remain. The
// damping coefficients depend on the order class:
//
//	class 1:   γ = 1/(2k),   λ = 1−γ,   c = 1 + 1/(2k−1)
//	class 2:   γ = 2/(3k),   λ = 1−γ,   c = 1 + 1/(3k−2)
//	class p≥3: γ = 1/(k+1),  λ = k·γ,   c = 1 + p/k
type AitkenTheta[T accel.Scalar] struct {
	src    accel.Source[T]
	strict bool
}

// NewAitkenTheta returns the hybrid over src. WithStrict turns the
// too-few-terms fallback into an error.
func NewAitkenTheta[T accel.Scalar](src accel.Source[T], opts ...Option) *AitkenTheta[T] {
	o := gatherOptions(opts)
	return &AitkenTheta[T]{src: src, strict: o.strict}
}

// Estimate transforms S(0), ..., S(n) with damping class order.
// For n < MinTerms it returns 0 (or accel.ErrDomain under WithStrict).
func (e *AitkenTheta[T]) Estimate(n, order int) (T, error) {
	const name = "epsilon-aitken-theta"
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return e.src.PartialSum(n)
	}
	if n < MinTerms {
		if e.strict {
			return 0, fmt.Errorf("%s: n=%d < %d: %w", name, n, MinTerms, accel.ErrDomain)
		}
		tracer().Debugf("%s: n=%d < %d, returning 0", name, n, MinTerms)
		return 0, nil
	}
	cur, err := accel.PartialSums(e.src, 0, n+1)
	if err != nil {
		return 0, err
	}

	for k := 1; len(cur) >= 5; k++ {
		gamma, lambda, c := coefficients[T](order, k)
		y := make([]T, len(cur)-2)
		for i := range y {
			d0, d1 := cur[i+1]-cur[i], cur[i+2]-cur[i+1]
			y[i] = cur[i+1] - c*d0*d1/(d1-d0)
		}
		z := make([]T, len(y)-2)
		for i := range z {
			d0, d1 := y[i+1]-y[i], y[i+2]-y[i+1]
			z[i] = gamma*y[i] + lambda*(y[i+1]+d0*d1/(d0-d1))
			if !accel.IsFinite(z[i]) {
				return 0, fmt.Errorf("%s: round %d, i=%d: %w", name, k, i, accel.ErrOverflow)
			}
		}
		cur = z
	}

	return accel.Finite(name, "estimate", cur[len(cur)-1])
}

func coefficients[T accel.Scalar](class, k int) (gamma, lambda, c T) {
	kk := T(k)
	switch class {
	case 1:
		gamma = 1 / (2 * kk)
		return gamma, 1 - gamma, 1 + 1/(2*kk-1)
	case 2:
		gamma = 2 / (3 * kk)
		return gamma, 1 - gamma, 1 + 1/(3*kk-2)
	default:
		gamma = 1 / (kk + 1)
		return gamma, kk * gamma, 1 + T(class)/kk
	}
}
