// Package richardson implements Richardson extrapolation for sequences whose
// error expands in powers of 4^{-m}.
//
// The table starts from e[0][m] = S(m) and eliminates one power per level:
//
//	e[l][m] = (4^l·e[l−1][m] − e[l−1][m−1]) / (4^l − 1),   l <= m
//
// Estimate(n, order) returns e[order][n]; Estimate(n, n) is the corner e[n][n].
// A sequence with S(m) = L + c·4^{-m} is reproduced exactly from level 1 on.
//
// Complexity: O(n·order) time, O(n) space; levels overwrite one row in place.
package richardson

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

const name = "richardson"

// Transform is Richardson extrapolation bound to a Source.
type Transform[T accel.Scalar] struct {
	src accel.Source[T]
}

// New returns Richardson extrapolation over src.
func New[T accel.Scalar](src accel.Source[T]) *Transform[T] {
	return &Transform[T]{src: src}
}

// Estimate returns e[order][n]. n == 0 and order > n are domain errors.
func (r *Transform[T]) Estimate(n, order int) (T, error) {
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return r.src.PartialSum(n)
	}
	if n == 0 {
		return 0, fmt.Errorf("%s: n must be positive: %w", name, accel.ErrDomain)
	}
	if order > n {
		return 0, fmt.Errorf("%s: order=%d exceeds n=%d: %w", name, order, n, accel.ErrDomain)
	}

	// only S(n-order..n) reach e[order][n]
	lo := n - order
	e, err := accel.PartialSums(r.src, lo, order+1)
	if err != nil {
		return 0, err
	}
	pow := T(1)
	for l := 1; l <= order; l++ {
		pow *= 4
		// descending m keeps e[m-1] at level l-1 until it is read
		for m := order; m >= l; m-- {
			e[m] = accel.FMA(pow, e[m], -e[m-1]) / (pow - 1)
			if !accel.IsFinite(e[m]) {
				return 0, fmt.Errorf("%s: cell (%d,%d): %w", name, l, lo+m, accel.ErrOverflow)
			}
		}
	}

	return e[order], nil
}
