// Package shanks implements the Shanks transformation: Aitken's Δ² process
// and its iteration to arbitrary order.
//
// Order 1 is the classic three-point Aitken step written in terms of the
// terms a(n), a(n+1) and the partial sum S(n):
//
//	S(n) + a(n)·a(n+1)·(a(n)+a(n+1)) / (a(n)² − a(n+1)²)
//
// which is exact for geometric sequences. The alternating variant uses the
// algebraically equal but shorter S(n) + a(n)·a(n+1)/(a(n)−a(n+1)).
//
// Order k > 1 computes order-1 values on the window [n−k+1, n+k−1] and then
// collapses neighbouring triples (b, a, c) with the centred Aitken step
//
//	a + (a(b+c−a) − b·c) / (2a − b − c)
//
// k−1 times until only index n remains.
//
// Errors:
//   - accel.ErrDomain for negative arguments or n < order.
//   - accel.ErrOverflow as soon as any table entry is NaN or ±Inf.
//
// Complexity: O(order²) time, O(order) space.
package shanks
