package shanks

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Transform is the Shanks transformation bound to a Source.
type Transform[T accel.Scalar] struct {
	src         accel.Source[T]
	alternating bool
}

// New returns the Shanks transformation for general series.
func New[T accel.Scalar](src accel.Source[T]) *Transform[T] {
	return &Transform[T]{src: src}
}

// NewAlternating returns the Shanks transformation with the shorter order-1
// ratio suited to alternating series.
func NewAlternating[T accel.Scalar](src accel.Source[T]) *Transform[T] {
	return &Transform[T]{src: src, alternating: true}
}

// Name identifies the variant in errors and traces.
func (s *Transform[T]) Name() string {
	if s.alternating {
		return "shanks-alternating"
	}
	return "shanks"
}

// Estimate returns the order-th Shanks transform centred at n.
func (s *Transform[T]) Estimate(n, order int) (T, error) {
	name := s.Name()
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return s.src.PartialSum(n)
	}
	if n < order {
		return 0, fmt.Errorf("%s: n=%d < order=%d: %w", name, n, order, accel.ErrDomain)
	}

	// order-1 values for i in [lo, lo+width)
	lo := n - order + 1
	width := 2*order - 1
	sums, err := accel.PartialSums(s.src, lo, width)
	if err != nil {
		return 0, err
	}
	a, err := accel.Terms(s.src, lo, width+1)
	if err != nil {
		return 0, err
	}
	row := make([]T, width)
	for i := range row {
		row[i] = s.aitken(sums[i], a[i], a[i+1])
		if !accel.IsFinite(row[i]) {
			return 0, fmt.Errorf("%s: aitken step at i=%d: %w", name, lo+i, accel.ErrOverflow)
		}
	}

	// row[i] is overwritten after its last read, so the collapse runs in place
	for level := 2; level <= order; level++ {
		for i := 0; i+2 < len(row); i++ {
			row[i] = collapse(row[i], row[i+1], row[i+2])
			if !accel.IsFinite(row[i]) {
				return 0, fmt.Errorf("%s: level %d at i=%d: %w", name, level, lo+level-1+i, accel.ErrOverflow)
			}
		}
		row = row[:len(row)-2]
	}

	return row[0], nil
}

// aitken is the order-1 step from S(i), a(i), a(i+1).
func (s *Transform[T]) aitken(sum, a, b T) T {
	if s.alternating {
		return accel.FMA(a, b/(a-b), sum)
	}

	return accel.FMA(a*b, (a+b)/accel.FMA(a, a, -b*b), sum)
}

// collapse applies the centred Aitken step to the neighbours (b, a, c).
func collapse[T accel.Scalar](b, a, c T) T {
	return accel.FMA(accel.FMA(a, c+b-a, -b*c), 1/(2*a-b-c), a)
}
