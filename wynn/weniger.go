package wynn

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/remainder"
)

// Weniger is Weniger's δ transformation.
type Weniger[T accel.Scalar] struct {
	src  accel.Source[T]
	zeta T
}

// NewWeniger returns the δ transformation over src. ζ defaults to
// DefaultZeta.
func NewWeniger[T accel.Scalar](src accel.Source[T], opts ...Option) *Weniger[T] {
	o := gatherOptions(opts)
	return &Weniger[T]{src: src, zeta: T(o.zeta)}
}

// Estimate returns δ_order from S(n), ..., S(n+order) and a(n+1), ...,
// a(n+order+1):
//
//	δ_k = Σ_j (−1)^j C(k,j) r_j S(n+j)/a(n+j+1) / Σ_j (−1)^j C(k,j) r_j /a(n+j+1)
//
// with r_j = (ζ+n+j)_{k−1} / (ζ+n+k)_{k−1}.
func (w *Weniger[T]) Estimate(n, order int) (T, error) {
	const name = "weniger"
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return w.src.PartialSum(n)
	}
	sums, err := accel.PartialSums(w.src, n, order+1)
	if err != nil {
		return 0, err
	}
	inv, err := remainder.Weights(remainder.TWave, w.src, n, order+1, 1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	var num, den T
	b := w.zeta + T(n)
	for j := 0; j <= order; j++ {
		r := accel.PochhammerRatio(b+T(j), b+T(order), order-1)
		c := accel.Sign[T](j) * accel.Binomial[T](order, j) * r * inv[j]
		num = accel.FMA(c, sums[j], num)
		den += c
	}

	return accel.Finite(name, "estimate", num/den)
}
