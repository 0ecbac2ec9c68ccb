package epsilon

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Robust is the ε-algorithm with machine-epsilon tolerances, early
// termination and best-so-far selection.
type Robust[T accel.Scalar] struct {
	src       accel.Source[T]
	threshold T
}

// NewRobust returns the robust ε-algorithm over src. WithThreshold tunes the
// irregularity bound.
func NewRobust[T accel.Scalar](src accel.Source[T], opts ...Option) *Robust[T] {
	o := gatherOptions(opts)
	return &Robust[T]{src: src, threshold: T(o.threshold)}
}

// Estimate returns the best estimate of EstimateWithError.
func (r *Robust[T]) Estimate(n, order int) (T, error) {
	v, _, err := r.EstimateWithError(n, order)
	return v, err
}

// EstimateWithError returns the robust estimate from S(n..n+2·order) and an
// estimate of its absolute error.
//
// Even columns are filled with the cross rule
//
//	E = C + 1/SS,  SS = 1/(C−W) + 1/(S−C) − 1/(C−N)
//
// where N, C, S are consecutive cells of column 2m−2 and W the cell of column
// 2m−4 beside C. Before each step:
//   - N, C and S equal to machine precision: converged, return S.
//   - any single difference at machine precision, or |SS·C| <= threshold:
//     the table is irregular, return the best estimate so far.
//
// The best estimate is the diagonal cell (the one using S(n+2·order)) with the
// smallest error |S−C| + |E−S| + |C−N|, and S(n+2·order) with an infinite
// error before any cell is accepted. The reported error is at least
// 50·ε_mach·|best|.
func (r *Robust[T]) EstimateWithError(n, order int) (T, T, error) {
	const name = "wynn-epsilon-robust"
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, 0, err
	}
	if order == 0 {
		s, err := r.src.PartialSum(n)
		return s, 0, err
	}
	sums, err := accel.PartialSums(r.src, n, 2*order+1)
	if err != nil {
		return 0, 0, err
	}

	emach := float64(accel.MachineEpsilon[T]())
	last := len(sums) - 1
	best := sums[last]
	bestErr := T(math.Inf(1))
	bound := func() T { return T(math.Max(float64(bestErr), noiseFactor*emach*float64(abs(best)))) }
	near := func(a, b T) bool {
		return scalar.EqualWithinAbsOrRel(float64(a), float64(b), 0, emach)
	}

	var west []T // column 2m-4; nil stands for the infinite column -2
	prev := sums
	for m := 1; m <= order; m++ {
		next := make([]T, len(prev)-2)
		for j := range next {
			e0, e1, e2 := prev[j], prev[j+1], prev[j+2]
			d2, d3 := e2-e1, e1-e0
			if near(e2, e1) && near(e1, e0) {
				tracer().Debugf("%s: converged at column %d, row %d", name, 2*m-2, j)
				best, bestErr = e2, abs(d2)+abs(d3)
				return best, bound(), nil
			}
			ss := 1/d2 - 1/d3
			irregular := near(e2, e1) || near(e1, e0)
			if west != nil {
				e3 := west[j+2]
				irregular = irregular || near(e1, e3)
				ss += 1 / (e1 - e3)
			}
			if irregular || abs(ss*e1) <= r.threshold {
				tracer().Debugf("%s: irregular table at column %d, row %d; keeping best so far", name, 2*m, j)
				return best, bound(), nil
			}
			next[j] = e1 + 1/ss
			if j == len(next)-1 {
				if e := abs(d2) + abs(next[j]-e2) + abs(d3); e <= bestErr {
					best, bestErr = next[j], e
				}
			}
		}
		west, prev = prev, next
	}

	return best, bound(), nil
}

func abs[T accel.Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
