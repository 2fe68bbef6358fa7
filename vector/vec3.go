// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"structs"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// Vec3 is a three-component vector.
type Vec3[T scalar.Number] struct {
	_       structs.HostLayout
	X, Y, Z T
}

// Vec3f and Vec3d are the float32 and float64 instantiations.
type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
)

// New3 returns the vector (x, y, z).
func New3[T scalar.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns (f, f, f).
func Splat3[T scalar.Number](f T) Vec3[T] {
	return Vec3[T]{X: f, Y: f, Z: f}
}

// Zero3 returns (0, 0, 0).
func Zero3[T scalar.Number]() Vec3[T] { return Splat3(T(0)) }

// One3 returns (1, 1, 1).
func One3[T scalar.Number]() Vec3[T] { return Splat3(T(1)) }

// NegativeOne3 returns (-1, -1, -1).
func NegativeOne3[T scalar.Signed]() Vec3[T] { return Splat3(T(-1)) }

// Up3 returns (0, 1, 0).
func Up3[T scalar.Number]() Vec3[T] { return Vec3[T]{Y: 1} }

// Down3 returns (0, -1, 0).
func Down3[T scalar.Signed]() Vec3[T] { return Vec3[T]{Y: -1} }

// At returns component i (0 → X, 1 → Y, 2 → Z).
// Panics with ErrIndexOutOfRange for any other index.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	vectorPanic(opAt, ErrIndexOutOfRange)
	return 0
}

// Array returns the components as an array in X, Y, Z order.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Add returns v + u.
func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// AddScalar returns v with t added to every component.
func (v Vec3[T]) AddScalar(t T) Vec3[T] {
	return Vec3[T]{X: v.X + t, Y: v.Y + t, Z: v.Z + t}
}

// Sub returns v - u.
func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// SubScalar returns v with t subtracted from every component.
func (v Vec3[T]) SubScalar(t T) Vec3[T] {
	return Vec3[T]{X: v.X - t, Y: v.Y - t, Z: v.Z - t}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns the component-wise product of v and u.
func (v Vec3[T]) Mul(u Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z}
}

// MulScalar returns v scaled by t.
func (v Vec3[T]) MulScalar(t T) Vec3[T] {
	return Vec3[T]{X: v.X * t, Y: v.Y * t, Z: v.Z * t}
}

// Div returns the component-wise quotient v / u.
// Panics with ErrDivisionByZero if any component of u is zero.
func (v Vec3[T]) Div(u Vec3[T]) Vec3[T] {
	if u.X == 0 || u.Y == 0 || u.Z == 0 {
		vectorPanic(opDiv, ErrDivisionByZero)
	}
	return Vec3[T]{X: v.X / u.X, Y: v.Y / u.Y, Z: v.Z / u.Z}
}

// DivScalar returns v / t. Panics with ErrDivisionByZero if t is zero.
func (v Vec3[T]) DivScalar(t T) Vec3[T] {
	if t == 0 {
		vectorPanic(opDivScalar, ErrDivisionByZero)
	}
	return Vec3[T]{X: v.X / t, Y: v.Y / t, Z: v.Z / t}
}

// Dot returns the dot product of v and u.
func (v Vec3[T]) Dot(u Vec3[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the right-handed cross product v × u.
func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize scales v in place to unit length.
// Panics with ErrZeroLength if v has zero length.
func (v *Vec3[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		vectorPanic(opNormalize, ErrZeroLength)
	}
	*v = v.DivScalar(l)
}

// Normalized returns a unit-length copy of v. Same panics as Normalize.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

// Perpendicular returns a vector orthogonal to v. There are infinitely many;
// this picks (-y, x, 0), falling back to (-z, 0, 0) when v lies on the Z
// axis. Panics with ErrZeroLength for the zero vector.
func (v Vec3[T]) Perpendicular() Vec3[T] {
	p := Vec3[T]{X: -v.Y, Y: v.X}
	if p.Length() != 0 {
		return p
	}
	p = Vec3[T]{X: -v.Z}
	if p.Length() == 0 {
		vectorPanic(opPerpendicular, ErrZeroLength)
	}
	return p
}

// Abs returns the component-wise absolute value.
func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y), Z: scalar.Abs(v.Z)}
}

// Max returns the component-wise maximum of v and u.
func (v Vec3[T]) Max(u Vec3[T]) Vec3[T] {
	return Vec3[T]{X: scalar.Max(v.X, u.X), Y: scalar.Max(v.Y, u.Y), Z: scalar.Max(v.Z, u.Z)}
}

// Min returns the component-wise minimum of v and u.
func (v Vec3[T]) Min(u Vec3[T]) Vec3[T] {
	return Vec3[T]{X: scalar.Min(v.X, u.X), Y: scalar.Min(v.Y, u.Y), Z: scalar.Min(v.Z, u.Z)}
}

// RotateAroundAxis rotates v by theta radians around axis using Rodrigues'
// rotation formula. axis is normalized first (panics with ErrZeroLength if it
// is the zero vector); positive angles follow the right-hand rule.
//
// Complexity: O(1), one sin/cos pair.
func (v Vec3[T]) RotateAroundAxis(theta T, axis Vec3[T]) Vec3[T] {
	r := axis.Normalized()
	c := scalar.Cos(theta)
	s := scalar.Sin(theta)
	k := 1 - c

	var q Vec3[T]
	q.X = (c+k*r.X*r.X)*v.X + (k*r.X*r.Y-r.Z*s)*v.Y + (k*r.X*r.Z+r.Y*s)*v.Z
	q.Y = (k*r.X*r.Y+r.Z*s)*v.X + (c+k*r.Y*r.Y)*v.Y + (k*r.Y*r.Z-r.X*s)*v.Z
	q.Z = (k*r.X*r.Z-r.Y*s)*v.X + (k*r.Y*r.Z+r.X*s)*v.Y + (c+k*r.Z*r.Z)*v.Z
	return q
}

// String renders v as "[x, y, z]".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}
