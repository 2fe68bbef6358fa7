// SPDX-License-Identifier: MIT

package color

import (
	"fmt"
	"structs"

	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// RGBA is a straight-alpha color with channels of type T.
type RGBA[T scalar.Number] struct {
	_          structs.HostLayout
	R, G, B, A T
}

// Common channel types.
type (
	RGBA8   = RGBA[uint8]
	RGBA32f = RGBA[float32]
	RGBA64f = RGBA[float64]
)

// Named colors.
var (
	Transparent8 = RGBA8{}
	Black8       = RGBA8{A: 255}
	White8       = RGBA8{R: 255, G: 255, B: 255, A: 255}

	Transparent32f = RGBA32f{}
	Black32f       = RGBA32f{A: 1}
	White32f       = RGBA32f{R: 1, G: 1, B: 1, A: 1}
)

// New returns the color (r, g, b, a).
func New[T scalar.Number](r, g, b, a T) RGBA[T] {
	return RGBA[T]{R: r, G: g, B: b, A: a}
}

// RGB returns the color (r, g, b) with alpha 1. For RGBA8 that is not
// opaque; use New with a = 255.
func RGB[T scalar.Number](r, g, b T) RGBA[T] {
	return RGBA[T]{R: r, G: g, B: b, A: 1}
}

// Gray returns the gray (v, v, v) with alpha 1.
func Gray[T scalar.Number](v T) RGBA[T] {
	return RGBA[T]{R: v, G: v, B: v, A: 1}
}

// GrayAlpha returns the gray (v, v, v) with alpha a.
func GrayAlpha[T scalar.Number](v, a T) RGBA[T] {
	return RGBA[T]{R: v, G: v, B: v, A: a}
}

// FromVec4 reads channels from X, Y, Z, W.
func FromVec4[T scalar.Number](v vector.Vec4[T]) RGBA[T] {
	return RGBA[T]{R: v.X, G: v.Y, B: v.Z, A: v.W}
}

// Vec4 returns the channels as (R, G, B, A) in X, Y, Z, W.
func (c RGBA[T]) Vec4() vector.Vec4[T] { return vector.New4(c.R, c.G, c.B, c.A) }

// At returns channel i (0 = R … 3 = A).
func (c RGBA[T]) At(i int) T {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	colorPanic(opAt, ErrIndexOutOfRange)
	return 0
}

// Add returns the per-channel sum.
func (c RGBA[T]) Add(o RGBA[T]) RGBA[T] {
	return RGBA[T]{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// AddScalar adds f to every channel.
func (c RGBA[T]) AddScalar(f T) RGBA[T] {
	return RGBA[T]{R: c.R + f, G: c.G + f, B: c.B + f, A: c.A + f}
}

// Sub returns the per-channel difference.
func (c RGBA[T]) Sub(o RGBA[T]) RGBA[T] {
	return RGBA[T]{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

// SubScalar subtracts f from every channel.
func (c RGBA[T]) SubScalar(f T) RGBA[T] {
	return RGBA[T]{R: c.R - f, G: c.G - f, B: c.B - f, A: c.A - f}
}

// Mul returns the per-channel product (modulation).
func (c RGBA[T]) Mul(o RGBA[T]) RGBA[T] {
	return RGBA[T]{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// MulScalar multiplies every channel by f.
func (c RGBA[T]) MulScalar(f T) RGBA[T] {
	return RGBA[T]{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// Div returns the per-channel quotient. Panics with ErrDivisionByZero if any
// channel of o is zero.
func (c RGBA[T]) Div(o RGBA[T]) RGBA[T] {
	if o.R == 0 || o.G == 0 || o.B == 0 || o.A == 0 {
		colorPanic(opDiv, ErrDivisionByZero)
	}
	return RGBA[T]{R: c.R / o.R, G: c.G / o.G, B: c.B / o.B, A: c.A / o.A}
}

// DivScalar divides every channel by f. Panics with ErrDivisionByZero if f is zero.
func (c RGBA[T]) DivScalar(f T) RGBA[T] {
	if f == 0 {
		colorPanic(opDivScalar, ErrDivisionByZero)
	}
	return RGBA[T]{R: c.R / f, G: c.G / f, B: c.B / f, A: c.A / f}
}

// Saturate clamps every channel, alpha included, to [0, 1].
// Meaningful for float channels; on RGBA8 it maps any non-zero channel to 1.
func (c RGBA[T]) Saturate() RGBA[T] {
	return RGBA[T]{
		R: scalar.Saturate(c.R),
		G: scalar.Saturate(c.G),
		B: scalar.Saturate(c.B),
		A: scalar.Saturate(c.A),
	}
}

// String formats the color as "[r, g, b, a]".
func (c RGBA[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", c.R, c.G, c.B, c.A)
}
