package series

import (
	"fmt"
	"math"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Known is a reference series together with its exact limit.
type Known[T accel.Scalar] struct {
	*Func[T]
	Name  string
	Limit T
}

// Geometric returns Σ x^n = 1/(1-x) for |x| < 1.
func Geometric[T accel.Scalar](x T) (Known[T], error) {
	if !(math.Abs(float64(x)) < 1) {
		return Known[T]{}, fmt.Errorf("series: geometric ratio %v outside (-1,1): %w", x, accel.ErrDomain)
	}

	return Known[T]{
		Func:  FromFunc(func(n int) T { return T(math.Pow(float64(x), float64(n))) }),
		Name:  "geometric",
		Limit: 1 / (1 - x),
	}, nil
}

// AlternatingHarmonic returns Σ (-1)^n/(n+1) = ln 2.
func AlternatingHarmonic[T accel.Scalar]() Known[T] {
	return Known[T]{
		Func:  FromFunc(func(n int) T { return accel.Sign[T](n) / T(n+1) }),
		Name:  "ln2",
		Limit: T(math.Ln2),
	}
}

// Basel returns Σ 1/(n+1)^2 = π²/6, a logarithmically convergent series.
func Basel[T accel.Scalar]() Known[T] {
	return Known[T]{
		Func: FromFunc(func(n int) T {
			m := T(n + 1)
			return 1 / (m * m)
		}),
		Name:  "zeta2",
		Limit: T(math.Pi * math.Pi / 6),
	}
}

// Leibniz returns Σ (-1)^n/(2n+1) = π/4.
func Leibniz[T accel.Scalar]() Known[T] {
	return Known[T]{
		Func:  FromFunc(func(n int) T { return accel.Sign[T](n) / T(2*n+1) }),
		Name:  "pi/4",
		Limit: T(math.Pi / 4),
	}
}
