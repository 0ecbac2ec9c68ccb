package series

import (
	"sync"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// Cached memoizes the terms and partial sums of an underlying Source.
//
// The first request for index n fetches every missing term up to n once;
// later requests at or below the cached length are O(1). Storage grows by
// half its size at a time, so a monotone scan costs amortized O(1) per index.
type Cached[T accel.Scalar] struct {
	mu    sync.Mutex
	src   accel.Source[T]
	terms []T
	sums  []T
}

// NewCached wraps src with a memo table.
func NewCached[T accel.Scalar](src accel.Source[T]) *Cached[T] {
	return &Cached[T]{src: src}
}

// fill extends the memo table through index n. Callers hold mu.
func (c *Cached[T]) fill(n int) error {
	if n < len(c.terms) {
		return nil
	}
	if need := n + 1; need > cap(c.terms) {
		grow := max(need, 3*cap(c.terms)/2+1)
		terms := make([]T, len(c.terms), grow)
		sums := make([]T, len(c.sums), grow)
		copy(terms, c.terms)
		copy(sums, c.sums)
		c.terms, c.sums = terms, sums
	}
	for i := len(c.terms); i <= n; i++ {
		a, err := c.src.Term(i)
		if err != nil {
			return err
		}
		s := a
		if i > 0 {
			s += c.sums[i-1]
		}
		c.terms = append(c.terms, a)
		c.sums = append(c.sums, s)
	}

	return nil
}

// Term returns a(n), fetching it from the wrapped source at most once.
func (c *Cached[T]) Term(n int) (T, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fill(n); err != nil {
		return 0, err
	}

	return c.terms[n], nil
}

// PartialSum returns a(0)+...+a(n) from the memo table.
func (c *Cached[T]) PartialSum(n int) (T, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fill(n); err != nil {
		return 0, err
	}

	return c.sums[n], nil
}

// Len reports how many indices are memoized.
func (c *Cached[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.terms)
}
