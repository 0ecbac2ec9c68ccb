package series

import "math/rand/v2"

// DefaultNoiseSeed seeds the stream of a Noisy built without one.
const DefaultNoiseSeed uint64 = 1

// NoiseRand returns stream number stream of an experiment seeded with seed.
// The pair is the two-word PCG seed, so each (seed, stream) is its own
// reproducible sequence no matter in which order streams are created. Give
// every Noisy of one run the same seed and a distinct stream.
//
// A *rand.Rand is not safe for concurrent use; hand each one to a single Noisy.
func NoiseRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
