// SPDX-License-Identifier: MIT

package random

import (
	"math"

	"github.com/katalvlaran/lvlgeom/color"
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Upto returns a uniform value in [0, max).
func Upto[T scalar.Number](max T) T { return BetweenFrom(defaultGenerator, 0, max) }

// UptoFrom is Upto drawing from src.
func UptoFrom[T scalar.Number](src Source, max T) T { return BetweenFrom(src, 0, max) }

// Between returns a uniform value in [min, max).
// Panics with ErrInvalidRange if max < min.
func Between[T scalar.Number](min, max T) T { return BetweenFrom(defaultGenerator, min, max) }

// BetweenFrom is Between drawing from src. The width max-min is taken in
// float64, so integer ranges wider than T's positive half do not wrap.
func BetweenFrom[T scalar.Number](src Source, min, max T) T {
	if max < min {
		randomPanic(opBetween, ErrInvalidRange)
	}
	lo := float64(min)
	return T(lo + src.Float64()*(float64(max)-lo))
}

// Vec2 draws each component independently from [min, max).
func Vec2[T scalar.Number](min, max vector.Vec2[T]) vector.Vec2[T] {
	return Vec2From(defaultGenerator, min, max)
}

// Vec2From is Vec2 drawing from src.
func Vec2From[T scalar.Number](src Source, min, max vector.Vec2[T]) vector.Vec2[T] {
	return vector.New2(
		BetweenFrom(src, min.X, max.X),
		BetweenFrom(src, min.Y, max.Y),
	)
}

// Vec3 draws each component independently from [min, max).
func Vec3[T scalar.Number](min, max vector.Vec3[T]) vector.Vec3[T] {
	return Vec3From(defaultGenerator, min, max)
}

// Vec3From is Vec3 drawing from src.
func Vec3From[T scalar.Number](src Source, min, max vector.Vec3[T]) vector.Vec3[T] {
	return vector.New3(
		BetweenFrom(src, min.X, max.X),
		BetweenFrom(src, min.Y, max.Y),
		BetweenFrom(src, min.Z, max.Z),
	)
}

// Vec4 draws each component independently from [min, max).
func Vec4[T scalar.Number](min, max vector.Vec4[T]) vector.Vec4[T] {
	return Vec4From(defaultGenerator, min, max)
}

// Vec4From is Vec4 drawing from src.
func Vec4From[T scalar.Number](src Source, min, max vector.Vec4[T]) vector.Vec4[T] {
	return vector.New4(
		BetweenFrom(src, min.X, max.X),
		BetweenFrom(src, min.Y, max.Y),
		BetweenFrom(src, min.Z, max.Z),
		BetweenFrom(src, min.W, max.W),
	)
}

// Color draws each channel independently from [min, max).
func Color[T scalar.Number](min, max color.RGBA[T]) color.RGBA[T] {
	return ColorFrom(defaultGenerator, min, max)
}

// ColorFrom is Color drawing from src.
func ColorFrom[T scalar.Number](src Source, min, max color.RGBA[T]) color.RGBA[T] {
	return color.New(
		BetweenFrom(src, min.R, max.R),
		BetweenFrom(src, min.G, max.G),
		BetweenFrom(src, min.B, max.B),
		BetweenFrom(src, min.A, max.A),
	)
}

// Int returns a uniform int in [0, count). Panics with ErrInvalidRange if count <= 0.
func Int(count int) int { return defaultGenerator.Intn(count) }

// Bool returns true or false with equal probability.
func Bool() bool { return BoolFrom(defaultGenerator) }

// BoolFrom is Bool drawing from src.
func BoolFrom(src Source) bool { return src.Float64() < 0.5 }

// Pick returns a uniformly chosen element of list.
// Panics with ErrEmptyList if list is empty.
func Pick[E any](list []E) E { return PickFrom(defaultGenerator, list) }

// PickFrom is Pick drawing from src.
func PickFrom[E any](src Source, list []E) E {
	if len(list) == 0 {
		randomPanic(opPick, ErrEmptyList)
	}
	return list[BetweenFrom(src, 0, len(list))]
}

// Normal returns a normally distributed value with the given mean and
// standard deviation (Box–Muller transform, one of the pair is discarded).
func Normal(mean, stdDev float64) float64 { return NormalFrom(defaultGenerator, mean, stdDev) }

// NormalFrom is Normal drawing from src.
func NormalFrom(src Source, mean, stdDev float64) float64 {
	u1 := 1 - src.Float64() // (0, 1]: keeps Log finite
	u2 := src.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stdDev*z
}
