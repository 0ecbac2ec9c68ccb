// Package registry builds acceleration algorithms by name from a YAML
// configuration.
//
// A configuration names one algorithm and the parameters it reads:
//
//	algorithm: levin-sidi-m
//	gamma: 12
//	remainder: t-wave
//	recurrence: true
//
// Load decodes and validates a document; unknown keys are rejected. Build
// turns a Config into an accel.Algorithm over a caller-supplied source.
// Parameters an algorithm does not use are ignored.
package registry

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'accel'.
func tracer() tracing.Trace {
	return tracing.Select("accel")
}
