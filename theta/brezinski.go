package theta

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Brezinski is Brezinski's θ algorithm.
type Brezinski[T accel.Scalar] struct {
	src accel.Source[T]
}

// NewBrezinski returns the θ algorithm over src.
func NewBrezinski[T accel.Scalar](src accel.Source[T]) *Brezinski[T] {
	return &Brezinski[T]{src: src}
}

// Estimate returns θ_order^{(0)} built from S(n), ..., S(n+3·order/2).
// order must be even.
func (b *Brezinski[T]) Estimate(n, order int) (T, error) {
	const name = "brezinski-theta"
	if v, done, err := prologue(name, b.src, n, order); done {
		return v, err
	}
	if order%2 != 0 {
		return 0, fmt.Errorf("%s: order=%d must be even: %w", name, order, accel.ErrDomain)
	}
	even, err := accel.PartialSums(b.src, n, 3*(order/2)+1)
	if err != nil {
		return 0, err
	}

	odd := make([]T, len(even)-1)
	for j := range odd {
		odd[j] = 1 / (even[j+1] - even[j])
		if !accel.IsFinite(odd[j]) {
			return 0, fmt.Errorf("%s: cell (1,%d): %w", name, j, accel.ErrOverflow)
		}
	}
	for col := 2; ; col += 2 {
		next := make([]T, min(len(even), len(odd))-2)
		for j := range next {
			next[j] = accel.FMA((even[j+2]-even[j+1])*(odd[j+2]-odd[j+1]), 1/(odd[j+2]-2*odd[j+1]+odd[j]), even[j+1])
			if !accel.IsFinite(next[j]) {
				return 0, fmt.Errorf("%s: cell (%d,%d): %w", name, col, j, accel.ErrOverflow)
			}
		}
		if col == order {
			return next[0], nil
		}
		nextOdd := make([]T, min(len(odd), len(next))-1)
		for j := range nextOdd {
			nextOdd[j] = odd[j+1] + 1/(next[j+1]-next[j])
			if !accel.IsFinite(nextOdd[j]) {
				return 0, fmt.Errorf("%s: cell (%d,%d): %w", name, col+1, j, accel.ErrOverflow)
			}
		}
		even, odd = next, nextOdd
	}
}
