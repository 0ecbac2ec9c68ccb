package series

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// checkIndex rejects negative indices.
func checkIndex(n int) error {
	if n < 0 {
		return fmt.Errorf("series: negative index %d: %w", n, accel.ErrDomain)
	}

	return nil
}

// Func is a Source defined by a term generator.
// PartialSum(n) sums a(0..n) in order, O(n) per call; wrap in Cached when the
// same source is queried repeatedly.
type Func[T accel.Scalar] struct {
	term func(n int) T
}

// FromFunc returns a Source whose n-th term is term(n).
func FromFunc[T accel.Scalar](term func(n int) T) *Func[T] {
	return &Func[T]{term: term}
}

// Term returns a(n).
func (f *Func[T]) Term(n int) (T, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}

	return f.term(n), nil
}

// PartialSum returns a(0)+...+a(n).
func (f *Func[T]) PartialSum(n int) (T, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}
	var s T
	for i := 0; i <= n; i++ {
		s += f.term(i)
	}

	return s, nil
}

// Slice is a finite Source over a fixed list of terms.
// Indices at or beyond the list length fail with accel.ErrDomain.
type Slice[T accel.Scalar] struct {
	terms []T
	sums  []T
}

// FromTerms copies terms into a finite Source with precomputed partial sums.
func FromTerms[T accel.Scalar](terms []T) *Slice[T] {
	s := &Slice[T]{
		terms: append([]T(nil), terms...),
		sums:  make([]T, len(terms)),
	}
	var acc T
	for i, a := range s.terms {
		acc += a
		s.sums[i] = acc
	}

	return s
}

// Len returns the number of available terms.
func (s *Slice[T]) Len() int { return len(s.terms) }

func (s *Slice[T]) check(n int) error {
	if err := checkIndex(n); err != nil {
		return err
	}
	if n >= len(s.terms) {
		return fmt.Errorf("series: index %d beyond %d terms: %w", n, len(s.terms), accel.ErrDomain)
	}

	return nil
}

// Term returns a(n).
func (s *Slice[T]) Term(n int) (T, error) {
	if err := s.check(n); err != nil {
		return 0, err
	}

	return s.terms[n], nil
}

// PartialSum returns a(0)+...+a(n).
func (s *Slice[T]) PartialSum(n int) (T, error) {
	if err := s.check(n); err != nil {
		return 0, err
	}

	return s.sums[n], nil
}
