// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Plane is the set of points p with n·p + d = 0, remembered together with
// the origin it was built from.
type Plane[T scalar.Float] struct {
	normal vector.Vec3[T]
	origin vector.Vec3[T]
	d      T
}

// Plane aliases.
type (
	Planef = Plane[float32]
	Planed = Plane[float64]
)

// NewPlane returns the plane through origin with the given normal.
// The normal is normalized; a zero normal panics with vector.ErrZeroLength.
func NewPlane[T scalar.Float](normal, origin vector.Vec3[T]) Plane[T] {
	var p Plane[T]
	p.Update(normal, origin)
	return p
}

// Update replaces the normal and origin and recomputes d.
func (p *Plane[T]) Update(normal, origin vector.Vec3[T]) {
	p.normal = normal.Normalized()
	p.origin = origin
	p.d = -p.normal.Dot(origin)
}

// Normal returns the unit normal.
func (p Plane[T]) Normal() vector.Vec3[T] { return p.normal }

// Origin returns the point the plane was built through.
func (p Plane[T]) Origin() vector.Vec3[T] { return p.origin }

// D returns the plane offset, -normal·origin.
func (p Plane[T]) D() T { return p.d }

// SignedDistance returns n·point + d: positive on the side the normal points to.
func (p Plane[T]) SignedDistance(point vector.Vec3[T]) T {
	return p.normal.Dot(point) + p.d
}

// Distance returns the unsigned distance from point to the plane.
func (p Plane[T]) Distance(point vector.Vec3[T]) T {
	return scalar.Abs(p.SignedDistance(point))
}

// Project returns the orthogonal projection of point onto the plane.
func (p Plane[T]) Project(point vector.Vec3[T]) vector.Vec3[T] {
	return point.Sub(p.normal.MulScalar(p.SignedDistance(point)))
}

// Location returns the point (x, y, z) on the plane.
// Panics with ErrVerticalPlane if the normal's Z component is zero.
func (p Plane[T]) Location(x, y T) vector.Vec3[T] {
	if p.normal.Z == 0 {
		geomPanic(opLocation, ErrVerticalPlane)
	}
	z := (-p.d - p.normal.X*x - p.normal.Y*y) / p.normal.Z
	return vector.New3(x, y, z)
}

// String renders the plane as "plane [normal:[x, y, z], origin: [x, y, z]]".
func (p Plane[T]) String() string {
	return fmt.Sprintf("plane [normal:%v, origin: %v]", p.normal, p.origin)
}
