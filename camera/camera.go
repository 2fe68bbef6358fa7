// SPDX-License-Identifier: MIT

package camera

import (
	"math"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Orthographic returns a parallel projection of the box
// [-width/2, width/2] × [-height/2, height/2] × [-near, -far] onto clip space.
func Orthographic[T scalar.Float](width, height, near, far T) matrix.Mat4[T] {
	if width == 0 || height == 0 || far == near {
		cameraPanic(opOrthographic, ErrInvalidViewVolume)
	}
	depth := far - near

	m := matrix.Identity4[T]()
	m.M[0] = 2 / width
	m.M[5] = 2 / height
	m.M[10] = -2 / depth
	m.M[14] = -(far + near) / depth
	return m
}

// Perspective returns a symmetric perspective projection. fovy is the full
// vertical field of view in radians, aspect is width / height.
//
//	f = 1 / tan(fovy/2)
//
//	| f/aspect  0        0                    0                  |
//	| 0         f        0                    0                  |
//	| 0         0  (far+near)/(near-far)  2·far·near/(near-far)  |
//	| 0         0       -1                    0                  |
func Perspective[T scalar.Float](fovy, aspect, near, far T) matrix.Mat4[T] {
	switch {
	case near <= 0 || far <= near:
		cameraPanic(opPerspective, ErrInvalidClipPlanes)
	case fovy <= 0 || float64(fovy) >= math.Pi:
		cameraPanic(opPerspective, ErrInvalidFieldOfView)
	case aspect <= 0:
		cameraPanic(opPerspective, ErrInvalidAspect)
	}
	f := 1 / scalar.Tan(fovy/2)
	span := near - far

	var m matrix.Mat4[T]
	m.M[0] = f / aspect
	m.M[5] = f
	m.M[10] = (far + near) / span
	m.M[11] = -1
	m.M[14] = 2 * far * near / span
	return m
}

// LookAt returns the view matrix of a camera at eye looking toward center,
// with up hinting which way is up on screen.
//
// Basis:
//
//	forward = normalize(center - eye)
//	right   = normalize(forward × up)
//	trueUp  = right × forward
//
// The rows of the rotation part are right, trueUp and -forward; the
// translation column is (-right·eye, -trueUp·eye, forward·eye).
func LookAt[T scalar.Float](eye, center, up vector.Vec3[T]) matrix.Mat4[T] {
	dir := center.Sub(eye)
	if dir.Length() == 0 {
		cameraPanic(opLookAt, ErrDegenerateBasis)
	}
	forward := dir.Normalized()

	side := forward.Cross(up)
	if side.Length() == 0 {
		cameraPanic(opLookAt, ErrDegenerateBasis)
	}
	right := side.Normalized()
	trueUp := right.Cross(forward)

	return matrix.NewMat4(
		right.X, trueUp.X, -forward.X, 0,
		right.Y, trueUp.Y, -forward.Y, 0,
		right.Z, trueUp.Z, -forward.Z, 0,
		-right.Dot(eye), -trueUp.Dot(eye), forward.Dot(eye), 1,
	)
}
