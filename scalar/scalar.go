// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns |a|. Unsigned values are returned unchanged.
func Abs[T Number](a T) T {
	if a < T(0) {
		return -a
	}
	return a
}

// Clamp limits a to [min, max]. Assumes min <= max.
func Clamp[T Number](a, min, max T) T {
	return Max(min, Min(a, max))
}

// Saturate clamps a to [0, 1].
func Saturate[T Number](a T) T {
	return Max(T(0), Min(a, T(1)))
}

// Step returns 0 if a < b, otherwise 1.
func Step[T Number](a, b T) T {
	if a < b {
		return T(0)
	}
	return T(1)
}

// Lerp interpolates linearly between min and max: min + (max-min)*t.
// The arithmetic runs in float64, so integer endpoints may be given in
// either order without wrapping. t is not clamped; see LerpClamp.
func Lerp[T Number](min, max T, t float32) T {
	lo := float64(min)
	return T(lo + (float64(max)-lo)*float64(t))
}

// LerpClamp is Lerp with the result clamped between min and max,
// whichever order they are given in.
func LerpClamp[T Number](min, max T, t float32) T {
	return Clamp(Lerp(min, max, t), Min(min, max), Max(min, max))
}

// DegToRad converts degrees to radians.
func DegToRad[T Float](a T) T {
	return a * T(math.Pi/180.0)
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](a T) T {
	return a * T(180.0/math.Pi)
}

// Floor returns the greatest integer value less than or equal to a.
func Floor[T Float](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Floor(f))
	}
	return T(math.Floor(float64(a)))
}

// Ceil returns the least integer value greater than or equal to a.
func Ceil[T Float](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Ceil(f))
	}
	return T(math.Ceil(float64(a)))
}

// Round returns the nearest integer, rounding half away from zero.
func Round[T Float](a T) T {
	return T(math.Round(float64(a)))
}
