package series

import "github.com/DarkLordRowan/shanks-university-sub001/accel"

// Perturbed adds a deterministic correction f(n) to every term of a Source.
type Perturbed[T accel.Scalar] struct {
	src accel.Source[T]
	f   func(n int) T
}

// NewPerturbed returns the source with terms a(n) + f(n).
func NewPerturbed[T accel.Scalar](src accel.Source[T], f func(n int) T) *Perturbed[T] {
	return &Perturbed[T]{src: src, f: f}
}

// Term returns a(n) + f(n).
func (p *Perturbed[T]) Term(n int) (T, error) {
	a, err := p.src.Term(n)
	if err != nil {
		return 0, err
	}

	return a + p.f(n), nil
}

// PartialSum returns S(n) + f(0) + ... + f(n).
func (p *Perturbed[T]) PartialSum(n int) (T, error) {
	s, err := p.src.PartialSum(n)
	if err != nil {
		return 0, err
	}
	for i := 0; i <= n; i++ {
		s += p.f(i)
	}

	return s, nil
}
