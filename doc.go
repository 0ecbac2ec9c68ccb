// Package shanksuniversity is a toolbox of convergence-acceleration
// transforms: given the partial sums of a slowly convergent (or divergent)
// series, estimate its limit from a handful of terms.
//
// 🚀 What is in the box?
//
//	Every transform implements accel.Algorithm[T] for T = float32 or float64:
//		• Shanks / Aitken Δ², plain and alternating
//		• Wynn ε: naive, patched with the singular rule, robust (QUADPACK-style),
//		  and the Epsilon-Aitken-Theta hybrid
//		• Levin-type: Drummond D, Levin L, Levin-Sidi S and M, five remainder estimates
//		• Richardson extrapolation with powers of four
//		• Generalized Wynn: ρ with three numerators, Weniger δ, Chang-Wynn
//		• Theta family: Brezinski θ, Lubkin W, Ford-Sidi 1, 2 and 3
//
// ✨ Contract
//
//   - Estimate(n, order) never mutates the source; tables live for one call.
//   - order 0 returns S(n) exactly, for every transform.
//   - Invalid input is accel.ErrDomain; any non-finite value on the way is
//     accel.ErrOverflow. Both are sentinels, test with errors.Is.
//   - accel.Sweep evaluates a grid of (n, order) points on a bounded pool of
//     goroutines.
//
// Under the hood:
//
//	accel/       Scalar, Source, Algorithm, sentinels, numeric helpers, Sweep
//	series/      sources: func, slice, cached, noisy, perturbed, reference series
//	remainder/   remainder estimates u, t, t-wave, v, v-wave
//	shanks/      Shanks transformation
//	epsilon/     Wynn ε variants and the Aitken-theta hybrid
//	levin/       Levin-type transforms, direct and recurrence evaluation
//	richardson/  Richardson extrapolation
//	wynn/        ρ, Weniger δ, Chang-Wynn
//	theta/       Brezinski θ, Lubkin W, Ford-Sidi
//	registry/    YAML configuration and construction by name
//
// Quick example:
//
//	src := series.Basel[float64]()            // Σ 1/(k+1)² = π²/6
//	alg := levin.NewLevin[float64](src)       // u remainder, β = 1
//	est, err := alg.Estimate(1, 8)            // ≈ 1.644934 from ten terms
//
//	go get github.com/DarkLordRowan/shanks-university-sub001
package shanksuniversity
