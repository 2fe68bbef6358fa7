// SPDX-License-Identifier: MIT

package camera

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidViewVolume is raised by Orthographic when width, height or
	// depth (far - near) is zero.
	ErrInvalidViewVolume = errors.New("camera: view volume has zero extent")

	// ErrInvalidClipPlanes is raised by Perspective unless 0 < near < far.
	ErrInvalidClipPlanes = errors.New("camera: clip planes must satisfy 0 < near < far")

	// ErrInvalidFieldOfView is raised by Perspective unless 0 < fovy < π.
	ErrInvalidFieldOfView = errors.New("camera: vertical field of view must be in (0, π)")

	// ErrInvalidAspect is raised by Perspective when aspect <= 0.
	ErrInvalidAspect = errors.New("camera: aspect ratio must be positive")

	// ErrDegenerateBasis is raised by LookAt when eye == center or up is
	// parallel to the view direction.
	ErrDegenerateBasis = errors.New("camera: cannot build a view basis")
)

const (
	opOrthographic = "Orthographic"
	opPerspective  = "Perspective"
	opLookAt       = "LookAt"
)

func cameraPanic(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
