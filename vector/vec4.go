// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"structs"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// Vec4 is a four-component vector, typically a homogeneous point (w = 1)
// or direction (w = 0).
type Vec4[T scalar.Number] struct {
	_          structs.HostLayout
	X, Y, Z, W T
}

// Vec4f and Vec4d are the float32 and float64 instantiations.
type (
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
)

// New4 returns the vector (x, y, z, w).
func New4[T scalar.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// FromVec3 extends v with the given w component.
func FromVec3[T scalar.Number](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Splat4 returns (f, f, f, f).
func Splat4[T scalar.Number](f T) Vec4[T] {
	return Vec4[T]{X: f, Y: f, Z: f, W: f}
}

// Zero4 returns (0, 0, 0, 0).
func Zero4[T scalar.Number]() Vec4[T] { return Splat4(T(0)) }

// One4 returns (1, 1, 1, 1).
func One4[T scalar.Number]() Vec4[T] { return Splat4(T(1)) }

// NegativeOne4 returns (-1, -1, -1, -1).
func NegativeOne4[T scalar.Signed]() Vec4[T] { return Splat4(T(-1)) }

// At returns component i (0 → X ... 3 → W).
// Panics with ErrIndexOutOfRange for any other index.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	vectorPanic(opAt, ErrIndexOutOfRange)
	return 0
}

// Array returns the components as an array in X, Y, Z, W order.
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// XYZ drops the W component.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z} }

// Add returns v + u.
func (v Vec4[T]) Add(u Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// AddScalar returns v with t added to every component.
func (v Vec4[T]) AddScalar(t T) Vec4[T] {
	return Vec4[T]{X: v.X + t, Y: v.Y + t, Z: v.Z + t, W: v.W + t}
}

// Sub returns v - u.
func (v Vec4[T]) Sub(u Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// SubScalar returns v with t subtracted from every component.
func (v Vec4[T]) SubScalar(t T) Vec4[T] {
	return Vec4[T]{X: v.X - t, Y: v.Y - t, Z: v.Z - t, W: v.W - t}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Mul returns the component-wise product of v and u.
func (v Vec4[T]) Mul(u Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z, W: v.W * u.W}
}

// MulScalar returns v scaled by t.
func (v Vec4[T]) MulScalar(t T) Vec4[T] {
	return Vec4[T]{X: v.X * t, Y: v.Y * t, Z: v.Z * t, W: v.W * t}
}

// Div returns the component-wise quotient v / u.
// Panics with ErrDivisionByZero if any component of u is zero.
func (v Vec4[T]) Div(u Vec4[T]) Vec4[T] {
	if u.X == 0 || u.Y == 0 || u.Z == 0 || u.W == 0 {
		vectorPanic(opDiv, ErrDivisionByZero)
	}
	return Vec4[T]{X: v.X / u.X, Y: v.Y / u.Y, Z: v.Z / u.Z, W: v.W / u.W}
}

// DivScalar returns v / t. Panics with ErrDivisionByZero if t is zero.
func (v Vec4[T]) DivScalar(t T) Vec4[T] {
	if t == 0 {
		vectorPanic(opDivScalar, ErrDivisionByZero)
	}
	return Vec4[T]{X: v.X / t, Y: v.Y / t, Z: v.Z / t, W: v.W / t}
}

// Dot returns the four-component dot product of v and u.
func (v Vec4[T]) Dot(u Vec4[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

// Length returns the Euclidean length of v over all four components.
func (v Vec4[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Normalize scales v in place to unit length.
// Panics with ErrZeroLength if v has zero length.
func (v *Vec4[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		vectorPanic(opNormalize, ErrZeroLength)
	}
	*v = v.DivScalar(l)
}

// Normalized returns a unit-length copy of v. Same panics as Normalize.
func (v Vec4[T]) Normalized() Vec4[T] {
	v.Normalize()
	return v
}

// Abs returns the component-wise absolute value.
func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y), Z: scalar.Abs(v.Z), W: scalar.Abs(v.W)}
}

// Max returns the component-wise maximum of v and u.
func (v Vec4[T]) Max(u Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: scalar.Max(v.X, u.X),
		Y: scalar.Max(v.Y, u.Y),
		Z: scalar.Max(v.Z, u.Z),
		W: scalar.Max(v.W, u.W),
	}
}

// Min returns the component-wise minimum of v and u.
func (v Vec4[T]) Min(u Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: scalar.Min(v.X, u.X),
		Y: scalar.Min(v.Y, u.Y),
		Z: scalar.Min(v.Z, u.Z),
		W: scalar.Min(v.W, u.W),
	}
}

// String renders v as "[x, y, z, w]".
func (v Vec4[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", v.X, v.Y, v.Z, v.W)
}
