// Package remainder implements the remainder estimates ω(m) that weight the
// partial sums of Levin-type transforms.
//
// A Levin-type transform models S(m) = S + ω(m)·z(m) with z a slowly varying
// correction; the weight used in the combination is 1/ω(m). The variant set is
// closed and dispatched through a table indexed by Variant:
//
//	U      ω = (β+m)·a(m)                 logarithmic convergence
//	T      ω = a(m)                       alternating series
//	TWave  ω = a(m+1)                     Smith-Ford modification of T
//	V      ω = a(m)a(m+1)/(a(m+1)-a(m))   linear convergence
//	VWave  ω = a(m+1)a(m+2)/(a(m+2)-a(m+1))
//
// Weights are evaluated at m = n + order, the index of the partial sum they scale.
package remainder

import (
	"fmt"
	"strings"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Variant selects a remainder estimate.
type Variant int

const (
	U Variant = iota
	T
	TWave
	V
	VWave
	variantCount
)

var names = [variantCount]string{
	U:     "u",
	T:     "t",
	TWave: "t-wave",
	V:     "v",
	VWave: "v-wave",
}

// String returns the configuration name of v.
func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return names[v]
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool { return v >= 0 && v < variantCount }

// Parse maps a configuration name ("u", "t", "t-wave", "v", "v-wave") to a Variant.
func Parse(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for v, s := range names {
		if s == key {
			return Variant(v), nil
		}
	}

	return 0, fmt.Errorf("remainder: unknown variant %q: %w", name, accel.ErrDomain)
}

// weightFunc computes 1/ω(m) from the terms a(m), a(m+1), ... starting at a[0];
// scale is β for the u variant.
type weightFunc[S accel.Scalar] func(a []S, m int, scale S) S

// lookahead is how many terms past a(m) each variant reads.
var lookahead = [variantCount]int{U: 0, T: 0, TWave: 1, V: 1, VWave: 2}

func table[S accel.Scalar]() [variantCount]weightFunc[S] {
	return [variantCount]weightFunc[S]{
		U:     func(a []S, m int, scale S) S { return 1 / ((scale + S(m)) * a[0]) },
		T:     func(a []S, _ int, _ S) S { return 1 / a[0] },
		TWave: func(a []S, _ int, _ S) S { return 1 / a[1] },
		V:     func(a []S, _ int, _ S) S { return (a[1] - a[0]) / (a[0] * a[1]) },
		VWave: func(a []S, _ int, _ S) S { return (a[2] - a[1]) / (a[1] * a[2]) },
	}
}

// Weight returns 1/ω(n+order) for variant v.
// A non-finite weight (a vanishing term) is reported as accel.ErrOverflow.
func Weight[S accel.Scalar](v Variant, src accel.Source[S], n, order int, scale S) (S, error) {
	if err := accel.CheckArgs("remainder", n, order); err != nil {
		return 0, err
	}
	w, err := Weights(v, src, n+order, 1, scale)
	if err != nil {
		return 0, err
	}

	return w[0], nil
}

// Weights returns 1/ω(n+j) for j = 0..count-1, fetching the term window once.
func Weights[S accel.Scalar](v Variant, src accel.Source[S], n, count int, scale S) ([]S, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("remainder: unknown variant %d: %w", int(v), accel.ErrDomain)
	}
	if err := accel.CheckArgs("remainder", n, count); err != nil {
		return nil, err
	}
	a, err := accel.Terms(src, n, count+lookahead[v])
	if err != nil {
		return nil, err
	}
	f := table[S]()[v]
	w := make([]S, count)
	for j := range w {
		w[j] = f(a[j:], n+j, scale)
		if !accel.IsFinite(w[j]) {
			return nil, fmt.Errorf("remainder: %s weight at m=%d is not finite: %w", v, n+j, accel.ErrOverflow)
		}
	}

	return w, nil
}
