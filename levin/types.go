package levin

import (
	"math"

	"github.com/DarkLordRowan/shanks-university-sub001/remainder"
)

// Kind selects the ratio r_j of the weighted average.
type Kind int

const (
	Drummond Kind = iota
	Levin
	SidiS
	SidiM
)

var kindNames = [...]string{
	Drummond: "drummond-d",
	Levin:    "levin-l",
	SidiS:    "levin-sidi-s",
	SidiM:    "levin-sidi-m",
}

// String returns the registry name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "levin-unknown"
	}
	return kindNames[k]
}

// Defaults.
const (
	// DefaultBeta is β, the shift in the Levin and Sidi S ratios and the scale
	// of the u remainder.
	DefaultBeta = 1.0
	// DefaultGamma is γ of Sidi M.
	DefaultGamma = 10.0
	// DefaultRemainder is the u estimate, suited to logarithmic convergence.
	DefaultRemainder = remainder.U
)

const (
	panicBetaInvalid      = "levin: WithBeta: beta must be finite and positive"
	panicGammaInvalid     = "levin: WithGamma: gamma must be finite"
	panicRemainderInvalid = "levin: WithRemainder: unknown remainder variant"
)

// Option configures a Levin-type transform.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	variant    remainder.Variant
	recurrence bool
	beta       float64
	gamma      float64
}

// WithRemainder selects the remainder estimate. Panics on an unknown variant.
func WithRemainder(v remainder.Variant) Option {
	if !v.Valid() {
		panic(panicRemainderInvalid)
	}
	return func(o *Options) { o.variant = v }
}

// WithRecurrence switches to the level-by-level recurrence.
func WithRecurrence() Option {
	return func(o *Options) { o.recurrence = true }
}

// WithBeta sets β. Panics unless beta is finite and positive.
func WithBeta(beta float64) Option {
	if !(beta > 0) || math.IsInf(beta, 0) {
		panic(panicBetaInvalid)
	}
	return func(o *Options) { o.beta = beta }
}

// WithGamma sets γ for Sidi M. Panics unless gamma is finite.
func WithGamma(gamma float64) Option {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		panic(panicGammaInvalid)
	}
	return func(o *Options) { o.gamma = gamma }
}

func gatherOptions(opts []Option) Options {
	o := Options{variant: DefaultRemainder, beta: DefaultBeta, gamma: DefaultGamma}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
