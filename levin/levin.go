package levin

import (
	"fmt"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/remainder"
)

// Transform is a Levin-type transformation bound to a Source.
type Transform[T accel.Scalar] struct {
	src        accel.Source[T]
	kind       Kind
	variant    remainder.Variant
	recurrence bool
	beta       T
	gamma      T
}

func newTransform[T accel.Scalar](src accel.Source[T], kind Kind, opts []Option) *Transform[T] {
	o := gatherOptions(opts)
	return &Transform[T]{
		src:        src,
		kind:       kind,
		variant:    o.variant,
		recurrence: o.recurrence,
		beta:       T(o.beta),
		gamma:      T(o.gamma),
	}
}

// NewDrummond returns Drummond's D transformation.
func NewDrummond[T accel.Scalar](src accel.Source[T], opts ...Option) *Transform[T] {
	return newTransform(src, Drummond, opts)
}

// NewLevin returns Levin's L transformation.
func NewLevin[T accel.Scalar](src accel.Source[T], opts ...Option) *Transform[T] {
	return newTransform(src, Levin, opts)
}

// NewSidiS returns the Levin-Sidi S transformation.
func NewSidiS[T accel.Scalar](src accel.Source[T], opts ...Option) *Transform[T] {
	return newTransform(src, SidiS, opts)
}

// NewSidiM returns the Levin-Sidi M transformation.
func NewSidiM[T accel.Scalar](src accel.Source[T], opts ...Option) *Transform[T] {
	return newTransform(src, SidiM, opts)
}

// Kind reports which transformation t computes.
func (t *Transform[T]) Kind() Kind { return t.kind }

// Estimate returns T_order from S(n), ..., S(n+order).
func (t *Transform[T]) Estimate(n, order int) (T, error) {
	name := t.kind.String()
	if err := accel.CheckArgs(name, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return t.src.PartialSum(n)
	}
	if t.kind == SidiM && !(t.gamma > T(n-1)) {
		return 0, fmt.Errorf("%s: gamma=%v must exceed n-1=%d: %w", name, t.gamma, n-1, accel.ErrDomain)
	}

	sums, err := accel.PartialSums(t.src, n, order+1)
	if err != nil {
		return 0, err
	}
	w, err := remainder.Weights(t.variant, t.src, n, order+1, t.beta)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	var v T
	if t.recurrence {
		v = t.collapse(n, order, sums, w)
	} else {
		v = t.direct(n, order, sums, w)
	}

	return accel.Finite(name, "estimate", v)
}

// direct evaluates the weighted average term by term.
func (t *Transform[T]) direct(n, k int, sums, w []T) T {
	var num, den T
	for j := 0; j <= k; j++ {
		c := accel.Sign[T](j) * accel.Binomial[T](k, j) * t.ratio(n, j, k) * w[j]
		num = accel.FMA(c, sums[j], num)
		den += c
	}

	return num / den
}

// ratio returns r_j for order k.
func (t *Transform[T]) ratio(n, j, k int) T {
	b := t.beta + T(n)
	switch t.kind {
	case Levin:
		return accel.Pow((b+T(j))/(b+T(k)), float64(k-1))
	case SidiS:
		return accel.PochhammerRatio(b+T(j), b+T(k), k-1)
	case SidiM:
		g := t.gamma + T(n)
		return accel.PochhammerRatio(g+T(j-k+2), g+2, k-1)
	default:
		return 1
	}
}
