// SPDX-License-Identifier: MIT

package random

// Default tuning for Gaussian-mode Range sampling.
const (
	// DefaultGaussianVariance is the variance of the acceptance density
	// exp(-(c-0.5)²/variance) over c ∈ [0, 1). With 0.045 roughly 38% of
	// candidates are accepted.
	DefaultGaussianVariance = 0.045

	// DefaultMaxRejections caps the rejection loop.
	DefaultMaxRejections = 1 << 16
)

// Options tunes Range.Sample.
//
// Variance      – width of the acceptance density; must be > 0.
// MaxRejections – candidates tried before falling back to the median; must be > 0.
type Options struct {
	Variance      float64
	MaxRejections int
}

// Option is a functional option for Range.Sample.
type Option func(*Options)

// DefaultOptions returns the defaults listed above.
func DefaultOptions() Options {
	return Options{
		Variance:      DefaultGaussianVariance,
		MaxRejections: DefaultMaxRejections,
	}
}

// WithVariance sets the acceptance density variance.
// Panics with ErrBadVariance if v <= 0.
func WithVariance(v float64) Option {
	return func(o *Options) {
		if v <= 0 {
			panic(ErrBadVariance.Error())
		}
		o.Variance = v
	}
}

// WithMaxRejections caps the number of rejected candidates.
// Panics with ErrBadMaxRejections if n <= 0.
func WithMaxRejections(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxRejections.Error())
		}
		o.MaxRejections = n
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
