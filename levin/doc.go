// Package levin implements the Levin-type transformations: Drummond D,
// Levin L, Levin-Sidi S and Levin-Sidi M.
//
// All four are instances of one weighted average of partial sums
//
//	        Σ_j (−1)^j C(k,j) r_j w_j S(n+j)
//	T_k = ─────────────────────────────────── ,  j = 0..k
//	        Σ_j (−1)^j C(k,j) r_j w_j
//
// where w_j = 1/ω(n+j) comes from a remainder estimate (package remainder)
// and r_j is a transform-specific ratio, with b = β+n:
//
//	Drummond  1
//	Levin     ((b+j)/(b+k))^(k−1)
//	Sidi S    (b+j)_{k−1} / (b+k)_{k−1}
//	Sidi M    (γ+n+j−k+2)_{k−1} / (γ+n+2)_{k−1}
//
// (x)_m is the Pochhammer symbol. Two evaluation modes give the same value up
// to rounding:
//
//   - direct (default): the sums above, O(k) per call.
//   - recurrence (WithRecurrence): numerator and denominator arrays are
//     collapsed level by level, X[j] ← p·X[j+1] − q·X[j], with FMA so each
//     level rounds once.
//
// Sidi M requires γ > n−1 and reports accel.ErrDomain otherwise. A
// non-finite weight or result is accel.ErrOverflow.
package levin
