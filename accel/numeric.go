package accel

import (
	"math"
	"unsafe"

	"gonum.org/v1/gonum/stat/combin"
)

// exactBinomialLimit bounds n for the integer path of combin.Binomial, whose
// intermediate products overflow int64 from n = 62 on.
const exactBinomialLimit = 60

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Scalar](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FMA returns x*y+z with a single rounding in float64.
func FMA[T Scalar](x, y, z T) T {
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// MachineEpsilon returns the spacing of T at 1.0.
func MachineEpsilon[T Scalar]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}

	return T(math.Nextafter(1, 2) - 1)
}

// Pow returns x**y computed in float64.
func Pow[T Scalar](x T, y float64) T {
	return T(math.Pow(float64(x), y))
}

// Sign returns (-1)^j.
func Sign[T Scalar](j int) T {
	if j&1 == 1 {
		return -1
	}

	return 1
}

// Binomial returns C(n, k) as T. Small arguments are exact; larger ones go
// through the log-gamma form.
func Binomial[T Scalar](n, k int) T {
	if k < 0 || k > n {
		return 0
	}
	if n <= exactBinomialLimit {
		return T(combin.Binomial(n, k))
	}

	return T(combin.GeneralizedBinomial(float64(n), float64(k)))
}

// PochhammerRatio returns (x)_k / (y)_k, the quotient of rising factorials
// x(x+1)...(x+k-1) and y(y+1)...(y+k-1), one factor pair at a time so the
// partial products stay near 1. k <= 0 gives 1.
func PochhammerRatio[T Scalar](x, y T, k int) T {
	r := T(1)
	for i := 0; i < k; i++ {
		r *= (x + T(i)) / (y + T(i))
	}

	return r
}
