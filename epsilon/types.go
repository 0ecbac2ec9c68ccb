package epsilon

import "math"

// Defaults.
const (
	// DefaultThreshold is the irregularity bound of the robust variant: a cross
	// rule step with |SS·ε| at or below it ends the table.
	DefaultThreshold = 1e-3

	// MinTerms is the smallest n the Epsilon-Aitken-Theta hybrid transforms;
	// below it Estimate returns 0 unless WithStrict is set.
	MinTerms = 4

	// noiseFactor scales the machine epsilon into the robust error floor.
	noiseFactor = 50
)

const (
	panicThresholdInvalid = "epsilon: WithThreshold: threshold must be finite, non-negative"
)

// Option configures an epsilon-family transform.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	threshold float64 // robust irregularity bound; DefaultThreshold
	strict    bool    // AitkenTheta: too few terms is ErrDomain instead of 0
}

// WithThreshold sets the irregularity bound of the robust variant.
// Panics if t is negative or not finite.
func WithThreshold(t float64) Option {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) { o.threshold = t }
}

// WithStrict makes AitkenTheta report n < MinTerms as accel.ErrDomain
// instead of returning 0.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

func gatherOptions(opts []Option) Options {
	o := Options{threshold: DefaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
