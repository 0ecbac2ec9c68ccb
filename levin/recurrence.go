package levin

import "github.com/DarkLordRowan/shanks-university-sub001/accel"

// collapse evaluates the weighted average with the level recurrence
//
//	X_K[j] = p·X_{K−1}[j+1] − q·X_{K−1}[j],  K = 1..k
//
// applied to X_0[j] = w_j·S(n+j) and to X_0[j] = w_j. Both arrays pick up the
// same overall factor, so X_k[0] of the two gives the estimate.
func (t *Transform[T]) collapse(n, k int, sums, w []T) T {
	num := make([]T, k+1)
	den := make([]T, k+1)
	for j := range num {
		num[j] = sums[j] * w[j]
		den[j] = w[j]
	}
	for level := 1; level <= k; level++ {
		for j := 0; j <= k-level; j++ {
			p, q := t.factors(n+j, level)
			num[j] = accel.FMA(p, num[j+1], -q*num[j])
			den[j] = accel.FMA(p, den[j+1], -q*den[j])
		}
	}

	return num[0] / den[0]
}

// factors returns (p, q) for row m = n+j at the given level.
//
//	Drummond  (1, 1)
//	Levin     (1, b(b+K−1)^(K−2) / (b+K)^(K−1)),                  b = β+m
//	Sidi S    (1, (b+K−1)(b+K−2) / ((b+2K−2)(b+2K−3))),           K >= 2
//	Sidi M    (γ+m+2, γ+m−K+2),                                   K >= 2
//
// Level 1 is a plain forward difference for every kind.
func (t *Transform[T]) factors(m, level int) (p, q T) {
	if level == 1 {
		return 1, 1
	}
	K := T(level)
	b := t.beta + T(m)
	switch t.kind {
	case Levin:
		return 1, b * accel.Pow(b+K-1, float64(level-2)) / accel.Pow(b+K, float64(level-1))
	case SidiS:
		return 1, (b + K - 1) * (b + K - 2) / ((b + 2*K - 2) * (b + 2*K - 3))
	case SidiM:
		g := t.gamma + T(m)
		return g + 2, g - K + 2
	default:
		return 1, 1
	}
}
