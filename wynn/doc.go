// Package wynn implements the generalizations of Wynn's table: the ρ
// algorithm with a choice of numerator, Weniger's δ transformation and the
// Chang-Wynn ε algorithm.
//
// The ρ table starts from ρ_{-1} = 0 and ρ_0^{(j)} = S(n+j) and fills
//
//	ρ_{k+1}^{(j)} = ρ_{k-1}^{(j+1)} + c_{k+1} / (ρ_k^{(j+1)} − ρ_k^{(j)})
//
// where the numerator c_k is selected by Numerator:
//
//	Rho          k
//	Generalized  k − γ − 1
//	GammaRho     −γ + ⌊k/2⌋/ρ + (k mod 2)
//
// Only even columns estimate the limit, so NewRho rejects odd orders.
// Classic ρ suits logarithmically convergent sums such as ζ(2).
//
// Weniger's δ is the Levin-type average with the remainder estimate
// a(n+j+1) and Pochhammer ratio (ζ+n+j)_{k−1}/(ζ+n+k)_{k−1}. It is fast on
// alternating series.
//
// Chang-Wynn modifies the ε rhombus rule with an auxiliary sequence F built
// from second differences; its second column is Lubkin's W. When a cell turns
// non-finite the table is truncated and the deepest complete even column
// answers.
package wynn

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'accel'.
func tracer() tracing.Trace {
	return tracing.Select("accel")
}
