package series

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
)

// DefaultNoiseAmplitude is the half-width of the uniform noise used by the
// synthetic test sequences.
const DefaultNoiseAmplitude = 1e-3

// Noisy adds uniform noise in [-amplitude, amplitude) to every term of a Source.
//
// Noise for index i is the i-th draw of the RNG, whatever order indices are
// requested in, so a given seed always yields the same perturbed sequence.
// Partial sums include the accumulated noise.
type Noisy[T accel.Scalar] struct {
	mu        sync.Mutex
	src       accel.Source[T]
	amplitude float64
	rng       *rand.Rand
	noise     []T
	noiseSums []T
}

// NewNoisy wraps src with noise drawn from rng, which the Noisy takes over.
// A nil rng means NoiseRand(DefaultNoiseSeed, 0). amplitude must be finite and non-negative.
func NewNoisy[T accel.Scalar](src accel.Source[T], amplitude float64, rng *rand.Rand) (*Noisy[T], error) {
	if amplitude < 0 || math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("series: noise amplitude %v: %w", amplitude, accel.ErrDomain)
	}
	if rng == nil {
		rng = NoiseRand(DefaultNoiseSeed, 0)
	}

	return &Noisy[T]{src: src, amplitude: amplitude, rng: rng}, nil
}

// draw extends the noise stream through index n. Callers hold mu.
func (z *Noisy[T]) draw(n int) {
	for i := len(z.noise); i <= n; i++ {
		e := T(z.amplitude * (2*z.rng.Float64() - 1))
		s := e
		if i > 0 {
			s += z.noiseSums[i-1]
		}
		z.noise = append(z.noise, e)
		z.noiseSums = append(z.noiseSums, s)
	}
}

// Term returns a(n) plus its noise sample.
func (z *Noisy[T]) Term(n int) (T, error) {
	a, err := z.src.Term(n)
	if err != nil {
		return 0, err
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	z.draw(n)

	return a + z.noise[n], nil
}

// PartialSum returns S(n) plus the noise accumulated over indices 0..n.
func (z *Noisy[T]) PartialSum(n int) (T, error) {
	s, err := z.src.PartialSum(n)
	if err != nil {
		return 0, err
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	z.draw(n)

	return s + z.noiseSums[n], nil
}
