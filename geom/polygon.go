// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/vector"
)

// Triangle is three points of any point type.
type Triangle[P any] struct {
	A, B, C P
}

// Quad is four points of any point type.
type Quad[P any] struct {
	A, B, C, D P
}

// Triangle and quad aliases over the vector types.
type (
	Triangle2f = Triangle[vector.Vec2f]
	Triangle3f = Triangle[vector.Vec3f]
	Triangle4f = Triangle[vector.Vec4f]
	Triangle2d = Triangle[vector.Vec2d]
	Triangle3d = Triangle[vector.Vec3d]
	Triangle4d = Triangle[vector.Vec4d]

	Quad2f = Quad[vector.Vec2f]
	Quad3f = Quad[vector.Vec3f]
	Quad4f = Quad[vector.Vec4f]
	Quad2d = Quad[vector.Vec2d]
	Quad3d = Quad[vector.Vec3d]
	Quad4d = Quad[vector.Vec4d]
)

// NewTriangle returns the triangle (a, b, c).
func NewTriangle[P any](a, b, c P) Triangle[P] {
	return Triangle[P]{A: a, B: b, C: c}
}

// At returns point i (0 = A). Panics with ErrIndexOutOfRange outside [0, 3).
func (t Triangle[P]) At(i int) P {
	switch i {
	case 0:
		return t.A
	case 1:
		return t.B
	case 2:
		return t.C
	}
	geomPanic(opAt, ErrIndexOutOfRange)
	var zero P
	return zero
}

// Points returns the points in order.
func (t Triangle[P]) Points() [3]P { return [3]P{t.A, t.B, t.C} }

// String renders the triangle as "[a, b, c]".
func (t Triangle[P]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", t.A, t.B, t.C)
}

// NewQuad returns the quad (a, b, c, d).
func NewQuad[P any](a, b, c, d P) Quad[P] {
	return Quad[P]{A: a, B: b, C: c, D: d}
}

// At returns point i (0 = A). Panics with ErrIndexOutOfRange outside [0, 4).
func (q Quad[P]) At(i int) P {
	switch i {
	case 0:
		return q.A
	case 1:
		return q.B
	case 2:
		return q.C
	case 3:
		return q.D
	}
	geomPanic(opAt, ErrIndexOutOfRange)
	var zero P
	return zero
}

// Points returns the points in order.
func (q Quad[P]) Points() [4]P { return [4]P{q.A, q.B, q.C, q.D} }

// String renders the quad as "[a, b, c, d]".
func (q Quad[P]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", q.A, q.B, q.C, q.D)
}
