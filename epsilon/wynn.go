package epsilon

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Wynn is the plain ε-algorithm.
type Wynn[T accel.Scalar] struct {
	src accel.Source[T]
}

// NewWynn returns the plain ε-algorithm over src.
func NewWynn[T accel.Scalar](src accel.Source[T], _ ...Option) *Wynn[T] {
	return &Wynn[T]{src: src}
}

// Estimate returns ε_{2·order}^{(0)} over S(n..n+2·order).
func (w *Wynn[T]) Estimate(n, order int) (T, error) {
	const name = "wynn-epsilon"
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return w.src.PartialSum(n)
	}
	cur, err := accel.PartialSums(w.src, n, 2*order+1)
	if err != nil {
		return 0, err
	}

	// prev holds ε_{k-1}; it is overwritten in place by ε_{k+1}
	prev := make([]T, len(cur))
	for k := 1; k <= 2*order; k++ {
		for j := 0; j+1 < len(cur); j++ {
			prev[j] = prev[j+1] + 1/(cur[j+1]-cur[j])
			if !accel.IsFinite(prev[j]) {
				return 0, fmt.Errorf("%s: cell (%d,%d): %w", name, k, j, accel.ErrOverflow)
			}
		}
		prev, cur = cur, prev[:len(cur)-1]
	}

	return cur[0], nil
}
