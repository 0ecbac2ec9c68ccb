package wynn

import "math"

// Numerator selects c_k in the ρ rhombus rule.
type Numerator int

const (
	// Rho is the classic c_k = k.
	Rho Numerator = iota
	// Generalized is Osada's c_k = k − γ − 1.
	Generalized
	// GammaRho is c_k = −γ + ⌊k/2⌋/ρ + (k mod 2).
	GammaRho

	numeratorCount
)

var numeratorNames = [numeratorCount]string{
	Rho:         "rho",
	Generalized: "generalized",
	GammaRho:    "gamma-rho",
}

// String returns the configuration name of v.
func (v Numerator) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return numeratorNames[v]
}

// Valid reports whether v is one of the defined numerators.
func (v Numerator) Valid() bool { return v >= 0 && v < numeratorCount }

// ParseNumerator maps a configuration name to its Numerator.
func ParseNumerator(name string) (Numerator, bool) {
	for v, s := range numeratorNames {
		if s == name {
			return Numerator(v), true
		}
	}
	return 0, false
}

// Defaults.
const (
	// DefaultGeneralizedGamma is γ for Generalized; it reduces to classic ρ.
	DefaultGeneralizedGamma = -1.0
	// DefaultGammaRhoGamma is γ for GammaRho.
	DefaultGammaRhoGamma = 2.0
	// DefaultRho is ρ for GammaRho.
	DefaultRho = 1.0
	// DefaultZeta is ζ, the shift of Weniger's Pochhammer ratio.
	DefaultZeta = 1.0
)

const (
	panicNumeratorInvalid = "wynn: WithNumerator: unknown numerator"
	panicGammaInvalid     = "wynn: WithGamma: gamma must be finite"
	panicRhoInvalid       = "wynn: WithRho: rho must be finite and non-zero"
	panicZetaInvalid      = "wynn: WithZeta: zeta must be finite and positive"
)

// Option configures a transform in this package.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	numerator Numerator
	gamma     float64
	gammaSet  bool
	rho       float64
	zeta      float64
}

// WithNumerator selects the ρ numerator. Panics on an unknown value.
func WithNumerator(v Numerator) Option {
	if !v.Valid() {
		panic(panicNumeratorInvalid)
	}
	return func(o *Options) { o.numerator = v }
}

// WithGamma sets γ of the Generalized and GammaRho numerators. Panics
// unless gamma is finite.
func WithGamma(gamma float64) Option {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		panic(panicGammaInvalid)
	}
	return func(o *Options) {
		o.gamma = gamma
		o.gammaSet = true
	}
}

// WithRho sets ρ of the GammaRho numerator. Panics unless rho is finite and
// non-zero.
func WithRho(rho float64) Option {
	if rho == 0 || math.IsNaN(rho) || math.IsInf(rho, 0) {
		panic(panicRhoInvalid)
	}
	return func(o *Options) { o.rho = rho }
}

// WithZeta sets ζ of Weniger's δ. Panics unless zeta is finite and positive.
func WithZeta(zeta float64) Option {
	if !(zeta > 0) || math.IsInf(zeta, 0) {
		panic(panicZetaInvalid)
	}
	return func(o *Options) { o.zeta = zeta }
}

func gatherOptions(opts []Option) Options {
	o := Options{numerator: Rho, rho: DefaultRho, zeta: DefaultZeta}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.gammaSet {
		switch o.numerator {
		case Generalized:
			o.gamma = DefaultGeneralizedGamma
		case GammaRho:
			o.gamma = DefaultGammaRhoGamma
		}
	}
	return o
}
