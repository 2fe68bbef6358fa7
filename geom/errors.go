// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrVerticalPlane is raised by Plane.Location when the normal has no Z
	// component, so no unique z exists for a given (x, y).
	ErrVerticalPlane = errors.New("geom: plane is parallel to the Z axis")

	// ErrIndexOutOfRange is raised by Triangle.At and Quad.At.
	ErrIndexOutOfRange = errors.New("geom: index out of range")
)

const (
	opLocation = "Location"
	opAt       = "At"
)

func geomPanic(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
