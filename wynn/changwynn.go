package wynn

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// ChangWynn is the Chang-Wynn modification of the ε algorithm.
//
// With Δ acting on the partial sums, the first two columns are
//
//	T_1^{(j)} = 1/ΔS_j
//	T_2^{(j)} = S_{j+1} − ΔS_j·ΔS_{j+1}·Δ²S_{j+1} / D_j
//	F_j       = Δ²S_j·Δ²S_{j+1} / D_j
//	D_j       = ΔS_{j+2}·Δ²S_j − ΔS_j·Δ²S_{j+1}
//
// and later columns follow
//
//	T_{k+1}^{(j)} = T_{k−1}^{(j+1)} + (1 − k + k·F_j) / (T_k^{(j+1)} − T_k^{(j)})
type ChangWynn[T accel.Scalar] struct {
	src accel.Source[T]
}

// NewChangWynn returns the Chang-Wynn algorithm over src.
func NewChangWynn[T accel.Scalar](src accel.Source[T]) *ChangWynn[T] {
	return &ChangWynn[T]{src: src}
}

// Estimate returns T_{2·order}^{(0)} built from S(n), ..., S(n+2·order+1).
// If a cell turns non-finite, the deepest complete even column is used
// instead; only a non-finite T_2^{(0)} is accel.ErrOverflow.
func (c *ChangWynn[T]) Estimate(n, order int) (T, error) {
	const name = "chang-wynn"
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return c.src.PartialSum(n)
	}
	size := 2*order + 2
	s, err := accel.PartialSums(c.src, n, size)
	if err != nil {
		return 0, err
	}
	d, err := accel.Terms(c.src, n+1, size-1)
	if err != nil {
		return 0, err
	}

	prev := make([]T, size-1)
	for i := range prev {
		prev[i] = 1 / d[i]
	}
	cur := make([]T, size-3)
	f := make([]T, size-3)
	for i := range cur {
		d2Next := d[i+2] - d[i+1]
		d2 := d[i+1] - d[i]
		down := 1 / (d[i+2]*d2 - d[i]*d2Next)
		cur[i] = s[i+1] - d[i]*d[i+1]*d2Next*down
		f[i] = d2Next * d2 * down
	}
	if !accel.IsFinite(cur[0]) {
		return 0, fmt.Errorf("%s: second column: %w", name, accel.ErrOverflow)
	}
	best := cur[0]
	if bad := firstNonFinite(cur); bad >= 0 {
		tracer().Debugf("%s: cell (2,%d) not finite, truncating at column 2", name, bad)
		return best, nil
	}

	for k := 2; k < 2*order; k++ {
		next := make([]T, len(cur)-1)
		for j := range next {
			next[j] = prev[j+1] + (1-T(k)+T(k)*f[j])/(cur[j+1]-cur[j])
			if !accel.IsFinite(next[j]) {
				tracer().Debugf("%s: cell (%d,%d) not finite, truncating at column %d", name, k+1, j, k-k%2)
				return best, nil
			}
		}
		prev, cur = cur, next
		if (k+1)%2 == 0 {
			best = cur[0]
		}
	}

	return best, nil
}

func firstNonFinite[T accel.Scalar](xs []T) int {
	for i, x := range xs {
		if !accel.IsFinite(x) {
			return i
		}
	}
	return -1
}
