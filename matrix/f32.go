// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// f32.Mat3 and f32.Mat4 are row-major (m[n*r + c]); ours are column-major,
// so each conversion is a transpose.

// F32 converts m to a row-major f32.Mat3.
func (m Mat3[T]) F32() f32.Mat3 {
	var out f32.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*r+c] = float32(m.M[c*3+r])
		}
	}
	return out
}

// F32 converts m to a row-major f32.Mat4.
func (m Mat4[T]) F32() f32.Mat4 {
	var out f32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*r+c] = float32(m.M[c*4+r])
		}
	}
	return out
}

// FromF32Mat3 converts a row-major f32.Mat3 to a Mat3[T].
func FromF32Mat3[T scalar.Number](a f32.Mat3) Mat3[T] {
	var m Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m.M[c*3+r] = T(a[3*r+c])
		}
	}
	return m
}

// FromF32Mat4 converts a row-major f32.Mat4 to a Mat4[T].
func FromF32Mat4[T scalar.Number](a f32.Mat4) Mat4[T] {
	var m Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m.M[c*4+r] = T(a[4*r+c])
		}
	}
	return m
}
