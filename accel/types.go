package accel

// Scalar is the numeric type a transform computes in.
// Both precisions share one implementation; float32 trades accuracy for speed.
type Scalar interface {
	~float32 | ~float64
}

// Source supplies the sequence under acceleration.
//
// Term(n) returns a(n) and PartialSum(n) returns S(n) = a(0)+...+a(n).
// Both fail with ErrDomain for n < 0. Implementations may be expensive per call;
// transforms fetch the window they need once through PartialSums and Terms.
type Source[T Scalar] interface {
	Term(n int) (T, error)
	PartialSum(n int) (T, error)
}

// Algorithm is a convergence-acceleration transform bound to a Source.
//
// Estimate returns the accelerated limit estimate for start index (or term
// count, depending on the family) n and refinement order. order == 0 returns
// S(n) unchanged.
type Algorithm[T Scalar] interface {
	Estimate(n, order int) (T, error)
}

// EstimateFunc adapts an ordinary function to the Algorithm interface.
type EstimateFunc[T Scalar] func(n, order int) (T, error)

// Estimate calls f(n, order).
func (f EstimateFunc[T]) Estimate(n, order int) (T, error) {
	return f(n, order)
}

// Point is one evaluated cell of a Sweep grid.
type Point[T Scalar] struct {
	N     int   // start index passed to Estimate
	Order int   // order passed to Estimate
	Value T     // estimate; zero when Err != nil
	Err   error // per-point failure (ErrDomain, ErrOverflow, ...)
}
