package registry

import (
	"slices"

	"github.com/DarkLordRowan/shanks-university-sub001/accel"
	"github.com/DarkLordRowan/shanks-university-sub001/epsilon"
	"github.com/DarkLordRowan/shanks-university-sub001/levin"
	"github.com/DarkLordRowan/shanks-university-sub001/remainder"
	"github.com/DarkLordRowan/shanks-university-sub001/richardson"
	"github.com/DarkLordRowan/shanks-university-sub001/shanks"
	"github.com/DarkLordRowan/shanks-university-sub001/theta"
	"github.com/DarkLordRowan/shanks-university-sub001/wynn"
)

type builder[T accel.Scalar] func(p Params, src accel.Source[T]) accel.Algorithm[T]

func builders[T accel.Scalar]() map[string]builder[T] {
	return map[string]builder[T]{
		"shanks": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return shanks.New(src)
		},
		"shanks-alternating": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return shanks.NewAlternating(src)
		},
		"wynn-epsilon": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return epsilon.NewWynn(src)
		},
		"wynn-epsilon-patched": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return epsilon.NewPatched(src)
		},
		"wynn-epsilon-robust": func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return epsilon.NewRobust(src, epsilonOptions(p)...)
		},
		"epsilon-aitken-theta": func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return epsilon.NewAitkenTheta(src, epsilonOptions(p)...)
		},
		levin.Drummond.String(): func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return levin.NewDrummond(src, levinOptions(p)...)
		},
		levin.Levin.String(): func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return levin.NewLevin(src, levinOptions(p)...)
		},
		levin.SidiS.String(): func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return levin.NewSidiS(src, levinOptions(p)...)
		},
		levin.SidiM.String(): func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return levin.NewSidiM(src, levinOptions(p)...)
		},
		"richardson": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return richardson.New(src)
		},
		"rho-wynn": func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return wynn.NewRho(src, wynnOptions(p)...)
		},
		"weniger": func(p Params, src accel.Source[T]) accel.Algorithm[T] {
			return wynn.NewWeniger(src, wynnOptions(p)...)
		},
		"chang-wynn": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return wynn.NewChangWynn(src)
		},
		"brezinski-theta": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return theta.NewBrezinski(src)
		},
		"ford-sidi-1": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return theta.NewFordSidi1(src)
		},
		"ford-sidi-2": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return theta.NewFordSidi2(src)
		},
		"ford-sidi-3": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return theta.NewFordSidi3(src)
		},
		"lubkin-w": func(_ Params, src accel.Source[T]) accel.Algorithm[T] {
			return theta.NewLubkin(src)
		},
	}
}

// Names lists every algorithm Build accepts, sorted.
func Names() []string {
	b := builders[float64]()
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build validates cfg and returns the named algorithm over src.
func Build[T accel.Scalar](cfg Config, src accel.Source[T]) (accel.Algorithm[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alg := builders[T]()[cfg.Algorithm](cfg.Params, src)
	tracer().Debugf("registry: built %s", cfg.Algorithm)

	return alg, nil
}

func epsilonOptions(p Params) []epsilon.Option {
	var opts []epsilon.Option
	if p.Threshold != nil {
		opts = append(opts, epsilon.WithThreshold(*p.Threshold))
	}
	if p.Strict {
		opts = append(opts, epsilon.WithStrict())
	}
	return opts
}

func levinOptions(p Params) []levin.Option {
	var opts []levin.Option
	if p.Remainder != "" {
		// validated by the oneof tag
		v, _ := remainder.Parse(p.Remainder)
		opts = append(opts, levin.WithRemainder(v))
	}
	if p.Recurrence {
		opts = append(opts, levin.WithRecurrence())
	}
	if p.Beta != nil {
		opts = append(opts, levin.WithBeta(*p.Beta))
	}
	if p.Gamma != nil {
		opts = append(opts, levin.WithGamma(*p.Gamma))
	}
	return opts
}

func wynnOptions(p Params) []wynn.Option {
	var opts []wynn.Option
	if p.Numerator != "" {
		v, _ := wynn.ParseNumerator(p.Numerator)
		opts = append(opts, wynn.WithNumerator(v))
	}
	if p.Gamma != nil {
		opts = append(opts, wynn.WithGamma(*p.Gamma))
	}
	if p.Rho != nil {
		opts = append(opts, wynn.WithRho(*p.Rho))
	}
	if p.Zeta != nil {
		opts = append(opts, wynn.WithZeta(*p.Zeta))
	}
	return opts
}
