package wynn

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// numerators maps each Numerator to c_k.
var numerators = [numeratorCount]func(k int, gamma, rho float64) float64{
	Rho: func(k int, _, _ float64) float64 {
		return float64(k)
	},
	Generalized: func(k int, gamma, _ float64) float64 {
		return float64(k) - gamma - 1
	},
	GammaRho: func(k int, gamma, rho float64) float64 {
		return -gamma + float64(k/2)/rho + float64(k%2)
	},
}

// RhoTransform is Wynn's ρ algorithm with a selectable numerator.
type RhoTransform[T accel.Scalar] struct {
	src       accel.Source[T]
	numerator Numerator
	gamma     float64
	rho       float64
}

// NewRho returns the ρ algorithm over src. The numerator defaults to Rho.
func NewRho[T accel.Scalar](src accel.Source[T], opts ...Option) *RhoTransform[T] {
	o := gatherOptions(opts)
	return &RhoTransform[T]{src: src, numerator: o.numerator, gamma: o.gamma, rho: o.rho}
}

// Numerator reports the configured numerator.
func (r *RhoTransform[T]) Numerator() Numerator { return r.numerator }

// Estimate returns ρ_order^{(0)} from S(n), ..., S(n+order). order must be
// even.
func (r *RhoTransform[T]) Estimate(n, order int) (T, error) {
	const name = "rho-wynn"
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return r.src.PartialSum(n)
	}
	if order%2 != 0 {
		return 0, fmt.Errorf("%s: order=%d must be even: %w", name, order, accel.ErrDomain)
	}
	cur, err := accel.PartialSums(r.src, n, order+1)
	if err != nil {
		return 0, err
	}

	num := numerators[r.numerator]
	prev := make([]T, len(cur)+1)
	for k := 1; k <= order; k++ {
		c := T(num(k, r.gamma, r.rho))
		next := make([]T, len(cur)-1)
		for j := range next {
			next[j] = prev[j+1] + c/(cur[j+1]-cur[j])
			if !accel.IsFinite(next[j]) {
				return 0, fmt.Errorf("%s: cell (%d,%d): %w", name, k, j, accel.ErrOverflow)
			}
		}
		prev, cur = cur, next
	}

	return cur[0], nil
}
