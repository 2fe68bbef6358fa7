// SPDX-License-Identifier: MIT

package random

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// SampleMode selects how a Range draws its values.
type SampleMode int

const (
	// Uniform draws every value in [Min, Max) with equal probability.
	Uniform SampleMode = iota

	// Gaussian clusters draws around the median by rejection sampling.
	Gaussian
)

// String returns "uniform" or "gaussian".
func (m SampleMode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	}
	return fmt.Sprintf("SampleMode(%d)", int(m))
}

// Range is a closed interval [Min, Max] with a sampling mode.
// The zero value is {0, 0, Uniform}. Callers keep Min <= Max.
type Range[T scalar.Number] struct {
	Min, Max T
	Mode     SampleMode
}

// NewRange returns the range [min, max] sampled with mode.
// Panics with ErrInvalidRange if max < min.
func NewRange[T scalar.Number](min, max T, mode SampleMode) Range[T] {
	if max < min {
		randomPanic(opRange, ErrInvalidRange)
	}
	return Range[T]{Min: min, Max: max, Mode: mode}
}

// Single returns the degenerate range [val, val].
func Single[T scalar.Number](val T, mode SampleMode) Range[T] {
	return Range[T]{Min: val, Max: val, Mode: mode}
}

// RandomInRange draws a value from the default Generator with default options.
func (r Range[T]) RandomInRange() T {
	return r.Sample(defaultGenerator)
}

// Sample draws a value from src according to r.Mode.
//
// Gaussian mode loops at most MaxRejections times:
//
//	c ← src; u ← src
//	accept when u < exp(-(c-0.5)²/Variance), returning Min + c·(Max-Min)
//
// and returns Median() if every candidate was rejected.
func (r Range[T]) Sample(src Source, opts ...Option) T {
	if r.Mode != Gaussian {
		return BetweenFrom(src, r.Min, r.Max)
	}
	o := gatherOptions(opts...)
	lo := float64(r.Min)
	span := float64(r.Max) - lo
	for i := 0; i < o.MaxRejections; i++ {
		c := src.Float64()
		d := c - 0.5
		if src.Float64() < math.Exp(-d*d/o.Variance) {
			return T(lo + c*span)
		}
	}
	return r.Median()
}

// Median returns (Min + Max) / 2, summed in float64 so integer bounds do
// not overflow. Integer ranges round toward zero.
func (r Range[T]) Median() T { return T((float64(r.Min) + float64(r.Max)) / 2) }

// Contains reports whether Min <= v <= Max.
func (r Range[T]) Contains(v T) bool { return v >= r.Min && v <= r.Max }

// Mul multiplies the bounds pairwise: [Min·rhs.Min, Max·rhs.Max].
// The mode of r is kept.
func (r Range[T]) Mul(rhs Range[T]) Range[T] {
	return Range[T]{Min: r.Min * rhs.Min, Max: r.Max * rhs.Max, Mode: r.Mode}
}

// String renders the range as "min: X max: Y".
func (r Range[T]) String() string {
	return fmt.Sprintf("min: %v max: %v", r.Min, r.Max)
}
