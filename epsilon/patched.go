package epsilon

import (
	"fmt"
	"math"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Patched is the ε-algorithm with Wynn's singular rule.
type Patched[T accel.Scalar] struct {
	src accel.Source[T]
}

// NewPatched returns the singular-rule ε-algorithm over src.
func NewPatched[T accel.Scalar](src accel.Source[T], _ ...Option) *Patched[T] {
	return &Patched[T]{src: src}
}

// Estimate returns ε_{2·order}^{(0)} over S(n..n+2·order).
//
// Two cells of column k that coincide to within 2·EMACH make ε_{k+1}^{(j)} a
// pole. The pole is kept as a marker, its right-hand neighbours take the
// limit ε_{k+2} = ε_k, and the cell opposite the pole is filled from the
// cross centred on it:
//
//	ε_{k+3}^{(j-1)} = N + S − W,  N = ε_{k+1}^{(j-1)}, S = ε_{k+1}^{(j+1)}, W = ε_{k-1}^{(j+1)}
//
// Poles that are not isolated, or a pole in the result cell, are ErrOverflow.
func (p *Patched[T]) Estimate(n, order int) (T, error) {
	const name = "wynn-epsilon-patched"
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return p.src.PartialSum(n)
	}
	sums, err := accel.PartialSums(p.src, n, 2*order+1)
	if err != nil {
		return 0, err
	}

	// col(k) is tab[k+1]; column -1 is all zeros. pole[k+1][j] marks an
	// infinite ε_k^{(j)}, whose tab entry is unused.
	tab := make([][]T, 2*order+2)
	pole := make([][]bool, 2*order+2)
	tab[0], pole[0] = make([]T, len(sums)+1), make([]bool, len(sums)+1)
	tab[1], pole[1] = sums, make([]bool, len(sums))
	tol := 2 * accel.MachineEpsilon[T]()
	for k := 0; k < 2*order; k++ {
		cur, prev := tab[k+1], tab[k]
		next := make([]T, len(cur)-1)
		mark := make([]bool, len(next))
		for j := range next {
			switch {
			case pole[k][j+1]:
				v, ok := jump(tab, pole, k, j)
				if !ok {
					return 0, fmt.Errorf("%s: cell (%d,%d) next to a pole: %w", name, k+1, j, accel.ErrOverflow)
				}
				tracer().Debugf("%s: singular rule at cell (%d,%d)", name, k+1, j)
				next[j] = v
			case pole[k+1][j] && pole[k+1][j+1]:
				return 0, fmt.Errorf("%s: adjacent poles at cell (%d,%d): %w", name, k+1, j, accel.ErrOverflow)
			case pole[k+1][j] || pole[k+1][j+1]:
				// 1/(±∞) vanishes
				next[j] = prev[j+1]
			case coincide(cur[j], cur[j+1], tol):
				mark[j] = true
			default:
				next[j] = prev[j+1] + 1/(cur[j+1]-cur[j])
				if !accel.IsFinite(next[j]) {
					return 0, fmt.Errorf("%s: cell (%d,%d): %w", name, k+1, j, accel.ErrOverflow)
				}
			}
		}
		tab[k+2], pole[k+2] = next, mark
	}
	if pole[2*order+1][0] {
		return 0, fmt.Errorf("%s: pole at the result cell: %w", name, accel.ErrOverflow)
	}

	return tab[2*order+1][0], nil
}

// jump fills cell (k+1, j) from the cross centred on the pole ε_{k-1}^{(j+1)}.
// Poles only arise from column 1 on, so k >= 2 and column k-3 exists.
func jump[T accel.Scalar](tab [][]T, pole [][]bool, k, j int) (T, bool) {
	if pole[k][j] || pole[k][j+2] || pole[k-2][j+2] {
		return 0, false
	}
	v := tab[k][j] + tab[k][j+2] - tab[k-2][j+2]

	return v, accel.IsFinite(v)
}

// coincide reports whether a and b agree to within tol relative to the larger.
func coincide[T accel.Scalar](a, b, tol T) bool {
	return math.Abs(float64(b-a)) <= float64(tol)*math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
}
