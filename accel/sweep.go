package accel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sweep evaluates alg on every (n, order) pair of ns × orders, using at most
// workers goroutines (workers <= 0 means unbounded).
//
// Points come back in row-major order (ns outer, orders inner). A failing
// Estimate does not stop the sweep; its error is kept in Point.Err, since high
// orders overflowing is an expected outcome when scanning for the best order.
// Cancelling ctx stops scheduling and returns ctx.Err().
func Sweep[T Scalar](ctx context.Context, alg Algorithm[T], ns, orders []int, workers int) ([]Point[T], error) {
	if alg == nil {
		return nil, fmt.Errorf("accel: sweep with nil algorithm: %w", ErrDomain)
	}

	points := make([]Point[T], 0, len(ns)*len(orders))
	for _, n := range ns {
		for _, k := range orders {
			points = append(points, Point[T]{N: n, Order: k})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range points {
		if gctx.Err() != nil {
			break
		}
		p := &points[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.Value, p.Err = alg.Estimate(p.N, p.Order)
			if p.Err != nil {
				tracer().Debugf("sweep: n=%d order=%d: %v", p.N, p.Order, p.Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
