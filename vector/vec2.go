// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"structs"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// Vec2 is a two-component vector.
type Vec2[T scalar.Number] struct {
	_    structs.HostLayout
	X, Y T
}

// Vec2f and Vec2d are the float32 and float64 instantiations.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
)

// New2 returns the vector (x, y).
func New2[T scalar.Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 returns (f, f).
func Splat2[T scalar.Number](f T) Vec2[T] {
	return Vec2[T]{X: f, Y: f}
}

// Zero2 returns (0, 0).
func Zero2[T scalar.Number]() Vec2[T] { return Splat2(T(0)) }

// One2 returns (1, 1).
func One2[T scalar.Number]() Vec2[T] { return Splat2(T(1)) }

// NegativeOne2 returns (-1, -1).
func NegativeOne2[T scalar.Signed]() Vec2[T] { return Splat2(T(-1)) }

// At returns component i (0 → X, 1 → Y).
// Panics with ErrIndexOutOfRange for any other index.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	vectorPanic(opAt, ErrIndexOutOfRange)
	return 0
}

// Array returns the components as an array in X, Y order.
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Add returns v + u.
func (v Vec2[T]) Add(u Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X + u.X, Y: v.Y + u.Y} }

// AddScalar returns v with t added to both components.
func (v Vec2[T]) AddScalar(t T) Vec2[T] { return Vec2[T]{X: v.X + t, Y: v.Y + t} }

// Sub returns v - u.
func (v Vec2[T]) Sub(u Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X - u.X, Y: v.Y - u.Y} }

// SubScalar returns v with t subtracted from both components.
func (v Vec2[T]) SubScalar(t T) Vec2[T] { return Vec2[T]{X: v.X - t, Y: v.Y - t} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{X: -v.X, Y: -v.Y} }

// Mul returns the component-wise product of v and u.
func (v Vec2[T]) Mul(u Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X * u.X, Y: v.Y * u.Y} }

// MulScalar returns v scaled by t.
func (v Vec2[T]) MulScalar(t T) Vec2[T] { return Vec2[T]{X: v.X * t, Y: v.Y * t} }

// Div returns the component-wise quotient v / u.
// Panics with ErrDivisionByZero if any component of u is zero.
func (v Vec2[T]) Div(u Vec2[T]) Vec2[T] {
	if u.X == 0 || u.Y == 0 {
		vectorPanic(opDiv, ErrDivisionByZero)
	}
	return Vec2[T]{X: v.X / u.X, Y: v.Y / u.Y}
}

// DivScalar returns v / t. Panics with ErrDivisionByZero if t is zero.
func (v Vec2[T]) DivScalar(t T) Vec2[T] {
	if t == 0 {
		vectorPanic(opDivScalar, ErrDivisionByZero)
	}
	return Vec2[T]{X: v.X / t, Y: v.Y / t}
}

// Dot returns the dot product of v and u.
func (v Vec2[T]) Dot(u Vec2[T]) T { return v.X*u.X + v.Y*u.Y }

// Length returns the Euclidean length of v.
func (v Vec2[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Normalize scales v in place to unit length.
// Panics with ErrZeroLength if v has zero length.
func (v *Vec2[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		vectorPanic(opNormalize, ErrZeroLength)
	}
	*v = v.DivScalar(l)
}

// Normalized returns a unit-length copy of v. Same panics as Normalize.
func (v Vec2[T]) Normalized() Vec2[T] {
	v.Normalize()
	return v
}

// Perpendicular returns v rotated 90° counter-clockwise: (-y, x).
func (v Vec2[T]) Perpendicular() Vec2[T] { return Vec2[T]{X: -v.Y, Y: v.X} }

// Abs returns the component-wise absolute value.
func (v Vec2[T]) Abs() Vec2[T] { return Vec2[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y)} }

// Max returns the component-wise maximum of v and u.
func (v Vec2[T]) Max(u Vec2[T]) Vec2[T] {
	return Vec2[T]{X: scalar.Max(v.X, u.X), Y: scalar.Max(v.Y, u.Y)}
}

// Min returns the component-wise minimum of v and u.
func (v Vec2[T]) Min(u Vec2[T]) Vec2[T] {
	return Vec2[T]{X: scalar.Min(v.X, u.X), Y: scalar.Min(v.Y, u.Y)}
}

// String renders v as "[x, y]".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}
