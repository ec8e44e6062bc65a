// Package montrealer: functional configuration for the evaluators.
// Options follow the documented-defaults pattern: no global state, each
// switch has a visible effect, invalid parameters panic (programmer
// error), invalid inputs return errors.

package montrealer

import "github.com/qphoton/montrealer/cmatrix"

// options carries the resolved evaluator configuration.
type options struct {
	eps          float64 // symmetry tolerance
	skipValidate bool    // skip the O(n²) symmetry scan
}

// Option mutates the evaluator configuration.
type Option func(*options)

// defaultOptions returns the documented defaults: symmetry validated
// within cmatrix.DefaultEpsilon.
func defaultOptions() options {
	return options{eps: cmatrix.DefaultEpsilon}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithEpsilon overrides the symmetry tolerance used by input validation.
// Panics on a negative eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("montrealer: WithEpsilon requires eps >= 0")
	}

	return func(o *options) { o.eps = eps }
}

// WithoutValidation skips the O(n²) symmetry scan on trusted inputs.
// Shape checks (nil, square, even dimension, zeta length) always run;
// they are O(1) and guard memory safety.
func WithoutValidation() Option {
	return func(o *options) { o.skipValidate = true }
}
