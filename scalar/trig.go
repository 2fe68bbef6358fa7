// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// The helpers below evaluate in float32 when T is float32 (matching what a
// float32 pipeline would compute with sqrtf/cosf) and in float64 otherwise.
// Integer kinds go through float64 and are truncated on the way back.

// Sqrt returns the square root of a.
func Sqrt[T Number](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(a)))
}

// Sin returns the sine of a radian angle.
func Sin[T Number](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(a)))
}

// Cos returns the cosine of a radian angle.
func Cos[T Number](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(a)))
}

// Tan returns the tangent of a radian angle.
func Tan[T Number](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(a)))
}

// Exp returns e**a.
func Exp[T Number](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Exp(f))
	}
	return T(math.Exp(float64(a)))
}

// Log returns the natural logarithm of a.
func Log[T Number](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Log(f))
	}
	return T(math.Log(float64(a)))
}
