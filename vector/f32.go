// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// Conversions to and from golang.org/x/image/math/f32, the plain float32
// arrays accepted by x/mobile/gl style uniform setters.

// F32 converts v to an f32.Vec2.
func (v Vec2[T]) F32() f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// F32 converts v to an f32.Vec3.
func (v Vec3[T]) F32() f32.Vec3 { return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }

// F32 converts v to an f32.Vec4.
func (v Vec4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// FromF32Vec2 converts an f32.Vec2 to a Vec2[T].
func FromF32Vec2[T scalar.Number](a f32.Vec2) Vec2[T] {
	return Vec2[T]{X: T(a[0]), Y: T(a[1])}
}

// FromF32Vec3 converts an f32.Vec3 to a Vec3[T].
func FromF32Vec3[T scalar.Number](a f32.Vec3) Vec3[T] {
	return Vec3[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2])}
}

// FromF32Vec4 converts an f32.Vec4 to a Vec4[T].
func FromF32Vec4[T scalar.Number](a f32.Vec4) Vec4[T] {
	return Vec4[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2]), W: T(a[3])}
}
