package accel

import "fmt"

// PartialSums returns S(from), ..., S(from+count-1).
// S(from) comes from the source; later sums add one term each, which matches
// sequential summation bit for bit and touches every term once.
func PartialSums[T Scalar](src Source[T], from, count int) ([]T, error) {
	if from < 0 || count < 0 {
		return nil, fmt.Errorf("accel: window [%d,+%d): %w", from, count, ErrDomain)
	}
	out := make([]T, count)
	if count == 0 {
		return out, nil
	}
	s, err := src.PartialSum(from)
	if err != nil {
		return nil, err
	}
	out[0] = s
	for i := 1; i < count; i++ {
		a, err := src.Term(from + i)
		if err != nil {
			return nil, err
		}
		out[i] = out[i-1] + a
	}

	return out, nil
}

// Terms returns a(from), ..., a(from+count-1).
func Terms[T Scalar](src Source[T], from, count int) ([]T, error) {
	if from < 0 || count < 0 {
		return nil, fmt.Errorf("accel: window [%d,+%d): %w", from, count, ErrDomain)
	}
	out := make([]T, count)
	for i := range out {
		a, err := src.Term(from + i)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}

	return out, nil
}
