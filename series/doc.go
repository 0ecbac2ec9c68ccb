// Package series provides Source implementations for the acceleration
// transforms: sources built from a term function or a slice, a memoizing
// wrapper, deterministic noise injection for synthetic tests, additive
// perturbation, and a few reference series with known limits.
//
// All sources fail with accel.ErrDomain for negative indices. Wrappers that
// keep internal state (Cached, Noisy) are safe for concurrent use.
//
// Noise is drawn from a caller-owned *rand.Rand; nothing here touches a
// process-wide random source, so a fixed seed reproduces a sequence exactly.
package series
