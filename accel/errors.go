package accel

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an invalid argument: negative index or order, wrong
	// order parity, or a parameter outside its valid range.
	ErrDomain = errors.New("accel: domain error")

	// ErrOverflow indicates a non-finite intermediate or final value, almost
	// always a division by a difference that cancelled to zero.
	ErrOverflow = errors.New("accel: division by zero")
)

// CheckArgs rejects negative n or order with ErrDomain.
func CheckArgs(name string, n, order int) error {
	if n < 0 {
		return fmt.Errorf("%s: negative n=%d: %w", name, n, ErrDomain)
	}
	if order < 0 {
		return fmt.Errorf("%s: negative order=%d: %w", name, order, ErrDomain)
	}

	return nil
}

// Finite returns x unchanged, or ErrOverflow naming what when x is NaN or ±Inf.
func Finite[T Scalar](name, what string, x T) (T, error) {
	if !IsFinite(x) {
		return 0, fmt.Errorf("%s: %s is not finite: %w", name, what, ErrOverflow)
	}

	return x, nil
}
