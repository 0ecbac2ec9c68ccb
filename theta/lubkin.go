package theta

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Lubkin is Lubkin's W transform applied order times.
type Lubkin[T accel.Scalar] struct {
	src accel.Source[T]
}

// NewLubkin returns the W transform over src.
func NewLubkin[T accel.Scalar](src accel.Source[T]) *Lubkin[T] {
	return &Lubkin[T]{src: src}
}

// Estimate returns W_order^{(0)} built from S(n), ..., S(n+3·order).
func (l *Lubkin[T]) Estimate(n, order int) (T, error) {
	const name = "lubkin-w"
	if v, done, err := prologue(name, l.src, n, order); done {
		return v, err
	}
	w, err := accel.PartialSums(l.src, n, 3*order+1)
	if err != nil {
		return 0, err
	}

	for k := 1; k <= order; k++ {
		for j := 0; j+3 < len(w); j++ {
			d0, d1, d2 := w[j+1]-w[j], w[j+2]-w[j+1], w[j+3]-w[j+2]
			lo := d0 * (d2 - d1)
			hi := d2 * (d1 - d0)
			w[j] = accel.FMA(-d1, lo/(hi-lo), w[j+1])
			if !accel.IsFinite(w[j]) {
				return 0, fmt.Errorf("%s: cell (%d,%d): %w", name, k, j, accel.ErrOverflow)
			}
		}
		w = w[:len(w)-3]
	}

	return w[0], nil
}
