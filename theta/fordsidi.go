package theta

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/shanks"
)

// FordSidi1 is the Ford-Sidi E process with Shanks-derived auxiliary
// sequences g_i(m) = S(m) − Shanks_i(m).
type FordSidi1[T accel.Scalar] struct {
	src    accel.Source[T]
	shanks *shanks.Transform[T]
}

// NewFordSidi1 returns the first Ford-Sidi transformation over src.
func NewFordSidi1[T accel.Scalar](src accel.Source[T]) *FordSidi1[T] {
	return &FordSidi1[T]{src: src, shanks: shanks.New(src)}
}

// psiKey addresses ψ_p^{(m)} applied to sequence u.
type psiKey struct {
	m, p, u int
}

// sequence ids for psiKey.u; values ≥ 1 select g_u
const (
	seqSum  = 0
	seqOnes = -1
)

// fordSidi1Eval holds the memo of one Estimate call.
type fordSidi1Eval[T accel.Scalar] struct {
	f   *FordSidi1[T]
	psi map[psiKey]T
	g   map[[2]int]T
}

// Estimate returns E_order from S(n), ..., S(n+order). The auxiliary
// sequences need Shanks_i(n) for i ≤ order, so n must be at least order.
func (f *FordSidi1[T]) Estimate(n, order int) (T, error) {
	const name = "ford-sidi-1"
	if v, done, err := prologue(name, f.src, n, order); done {
		return v, err
	}
	if n < order {
		return 0, fmt.Errorf("%s: n=%d < order=%d: %w", name, n, order, accel.ErrDomain)
	}

	e := &fordSidi1Eval[T]{f: f, psi: make(map[psiKey]T), g: make(map[[2]int]T)}
	num, err := e.delta(n, order-1, seqSum)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	den, err := e.delta(n, order-1, seqOnes)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Debugf("%s: memo holds %d ψ values", name, len(e.psi))

	return accel.Finite(name, "estimate", num/den)
}

// delta returns ψ_p^{(m+1)}(u) − ψ_p^{(m)}(u).
func (e *fordSidi1Eval[T]) delta(m, p, u int) (T, error) {
	hi, err := e.value(m+1, p, u)
	if err != nil {
		return 0, err
	}
	lo, err := e.value(m, p, u)
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

// value returns ψ_p^{(m)}(u):
//
//	ψ_0^{(m)}(u) = u(m)/g_1(m)
//	ψ_p^{(m)}(u) = Δψ_{p−1}^{(m)}(u) / Δψ_{p−1}^{(m)}(g_{p+1})
func (e *fordSidi1Eval[T]) value(m, p, u int) (T, error) {
	key := psiKey{m: m, p: p, u: u}
	if v, ok := e.psi[key]; ok {
		return v, nil
	}

	var v T
	if p == 0 {
		x, err := e.base(m, u)
		if err != nil {
			return 0, err
		}
		g1, err := e.aux(1, m)
		if err != nil {
			return 0, err
		}
		v = x / g1
	} else {
		num, err := e.delta(m, p-1, u)
		if err != nil {
			return 0, err
		}
		den, err := e.delta(m, p-1, p+1)
		if err != nil {
			return 0, err
		}
		v = num / den
	}
	if !accel.IsFinite(v) {
		return 0, fmt.Errorf("ψ(%d,%d) of sequence %d: %w", m, p, u, accel.ErrOverflow)
	}
	e.psi[key] = v

	return v, nil
}

func (e *fordSidi1Eval[T]) base(m, u int) (T, error) {
	switch {
	case u == seqSum:
		return e.f.src.PartialSum(m)
	case u == seqOnes:
		return 1, nil
	default:
		return e.aux(u, m)
	}
}

// aux returns g_i(m) = S(m) − Shanks_i(m).
func (e *fordSidi1Eval[T]) aux(i, m int) (T, error) {
	key := [2]int{i, m}
	if v, ok := e.g[key]; ok {
		return v, nil
	}
	s, err := e.f.src.PartialSum(m)
	if err != nil {
		return 0, err
	}
	t, err := e.f.shanks.Estimate(m, i)
	if err != nil {
		return 0, err
	}
	e.g[key] = s - t

	return s - t, nil
}

// FordSidi2 is a single Aitken step taken at the nearest usable index.
type FordSidi2[T accel.Scalar] struct {
	src accel.Source[T]
}

// NewFordSidi2 returns the second Ford-Sidi transformation over src.
func NewFordSidi2[T accel.Scalar](src accel.Source[T]) *FordSidi2[T] {
	return &FordSidi2[T]{src: src}
}

// Estimate walks m down from n to the first index m >= 0 with Δ²S(m) ≠ 0 and
// returns S(m) − ΔS(m)²/Δ²S(m). Only orders 0 and 1 are defined.
func (f *FordSidi2[T]) Estimate(n, order int) (T, error) {
	const name = "ford-sidi-2"
	if v, done, err := prologue(name, f.src, n, order); done {
		return v, err
	}
	if order > 1 {
		return 0, fmt.Errorf("%s: order=%d > 1: %w", name, order, accel.ErrDomain)
	}
	a, err := accel.Terms(f.src, 1, n+2)
	if err != nil {
		return 0, err
	}

	// a[i] holds term i+1, so ΔS(m) = a[m] and Δ²S(m) = a[m+1] − a[m]
	m := n
	for ; m >= 0; m-- {
		if a[m+1]-a[m] != 0 {
			break
		}
	}
	if m < 0 {
		return 0, fmt.Errorf("%s: no non-zero second difference at or below n=%d: %w", name, n, accel.ErrOverflow)
	}
	if m != n {
		tracer().Debugf("%s: walked back from n=%d to m=%d", name, n, m)
	}
	s, err := f.src.PartialSum(m)
	if err != nil {
		return 0, err
	}
	d := a[m]

	return accel.Finite(name, "estimate", accel.FMA(-d, d/(a[m+1]-a[m]), s))
}

// FordSidi3 is the Ford-Sidi E process with g_i(m) = a(m)(m+1)^{2−i}.
type FordSidi3[T accel.Scalar] struct {
	src accel.Source[T]
}

// NewFordSidi3 returns the third Ford-Sidi transformation over src.
func NewFordSidi3[T accel.Scalar](src accel.Source[T]) *FordSidi3[T] {
	return &FordSidi3[T]{src: src}
}

// Estimate returns E_order from S(n), ..., S(n+order), filling the ψ arrays
// of S, of 1 and of g_2..g_order one level at a time.
func (f *FordSidi3[T]) Estimate(n, order int) (T, error) {
	const name = "ford-sidi-3"
	if v, done, err := prologue(name, f.src, n, order); done {
		return v, err
	}
	size := order + 1
	sums, err := accel.PartialSums(f.src, n, size)
	if err != nil {
		return 0, err
	}
	a, err := accel.Terms(f.src, n, size)
	if err != nil {
		return 0, err
	}

	// level 0: ψ(u)(m) = u(m)/g_1(m), with g_1(m) = a(m)(m+1)
	fsa := make([]T, size)
	fsi := make([]T, size)
	fsg := make([][]T, order+1) // fsg[i] tracks g_i for i = 2..order
	for i := 2; i <= order; i++ {
		fsg[i] = make([]T, size)
	}
	for j := 0; j < size; j++ {
		m1 := T(n + j + 1)
		g1 := a[j] * m1
		fsa[j] = sums[j] / g1
		fsi[j] = 1 / g1
		// g_i/g_1 = (m+1)^{1−i}
		r := 1 / m1
		for i := 2; i <= order; i++ {
			fsg[i][j] = r
			r /= m1
		}
	}

	for p := 1; p < order; p++ {
		d := fsg[p+1]
		for j := 0; j < size-p; j++ {
			den := d[j+1] - d[j]
			fsa[j] = (fsa[j+1] - fsa[j]) / den
			fsi[j] = (fsi[j+1] - fsi[j]) / den
			for i := p + 2; i <= order; i++ {
				fsg[i][j] = (fsg[i][j+1] - fsg[i][j]) / den
			}
			if !accel.IsFinite(fsa[j]) || !accel.IsFinite(fsi[j]) {
				return 0, fmt.Errorf("%s: level %d at m=%d: %w", name, p, n+j, accel.ErrOverflow)
			}
		}
	}

	return accel.Finite(name, "estimate", (fsa[1]-fsa[0])/(fsi[1]-fsi[0]))
}
