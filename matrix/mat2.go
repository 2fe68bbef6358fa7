// SPDX-License-Identifier: MIT

package matrix

import (
	"structs"

	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Mat2 is a 2×2 column-major matrix. M[c*2+r] holds column c, row r.
type Mat2[T scalar.Number] struct {
	_ structs.HostLayout
	M [4]T
}

// Mat2f and Mat2d are the float32 and float64 instantiations.
type (
	Mat2f = Mat2[float32]
	Mat2d = Mat2[float64]
)

// Identity2 returns the 2×2 identity.
func Identity2[T scalar.Number]() Mat2[T] {
	var m Mat2[T]
	identity(m.M[:], 2)
	return m
}

// NewMat2 builds a matrix from 4 values given column by column.
func NewMat2[T scalar.Number](m00, m01, m10, m11 T) Mat2[T] {
	return Mat2[T]{M: [4]T{m00, m01, m10, m11}}
}

// At returns the element in column c, row r.
func (m Mat2[T]) At(c, r int) T {
	checkIndex(opAt, 2, c, r)
	return m.M[c*2+r]
}

// Set assigns the element in column c, row r.
func (m *Mat2[T]) Set(c, r int, v T) {
	checkIndex(opSet, 2, c, r)
	m.M[c*2+r] = v
}

// Col returns column c.
func (m Mat2[T]) Col(c int) vector.Vec2[T] {
	checkIndex(opCol, 2, c, 0)
	return vector.New2(m.M[c*2], m.M[c*2+1])
}

// Row returns row r.
func (m Mat2[T]) Row(r int) vector.Vec2[T] {
	checkIndex(opRow, 2, 0, r)
	return vector.New2(m.M[r], m.M[2+r])
}

// AddScalar adds f to every entry.
func (m Mat2[T]) AddScalar(f T) Mat2[T] {
	var out Mat2[T]
	ewScalar(out.M[:], m.M[:], f, add[T])
	return out
}

// SubScalar subtracts f from every entry.
func (m Mat2[T]) SubScalar(f T) Mat2[T] {
	var out Mat2[T]
	ewScalar(out.M[:], m.M[:], f, sub[T])
	return out
}

// MulScalar multiplies every entry by f.
func (m Mat2[T]) MulScalar(f T) Mat2[T] {
	var out Mat2[T]
	ewScalar(out.M[:], m.M[:], f, mul[T])
	return out
}

// DivScalar divides every entry by f. Panics with ErrDivisionByZero if f is zero.
func (m Mat2[T]) DivScalar(f T) Mat2[T] {
	if f == 0 {
		matrixPanic(opDivScalar, ErrDivisionByZero)
	}
	var out Mat2[T]
	ewScalar(out.M[:], m.M[:], f, div[T])
	return out
}

// Add returns the element-wise sum m + rhs.
func (m Mat2[T]) Add(rhs Mat2[T]) Mat2[T] {
	var out Mat2[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], add[T])
	return out
}

// Sub returns the element-wise difference m - rhs.
func (m Mat2[T]) Sub(rhs Mat2[T]) Mat2[T] {
	var out Mat2[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], sub[T])
	return out
}

// Div returns the element-wise quotient m / rhs.
// Panics with ErrDivisionByZero if any entry of rhs is zero.
func (m Mat2[T]) Div(rhs Mat2[T]) Mat2[T] {
	requireNonZero(opDiv, rhs.M[:])
	var out Mat2[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], div[T])
	return out
}

// Mul returns the matrix product m·rhs (rhs is applied first).
func (m Mat2[T]) Mul(rhs Mat2[T]) Mat2[T] {
	var out Mat2[T]
	mulColMajor(out.M[:], m.M[:], rhs.M[:], 2)
	return out
}

// MulVec returns m·v.
func (m Mat2[T]) MulVec(v vector.Vec2[T]) vector.Vec2[T] {
	var out [2]T
	in := v.Array()
	mulVecColMajor(out[:], m.M[:], in[:], 2)
	return vector.New2(out[0], out[1])
}

// Transpose transposes m in place.
func (m *Mat2[T]) Transpose() {
	transposeInPlace(m.M[:], 2)
}

// Transposed returns the transpose of m, leaving m unchanged.
func (m Mat2[T]) Transposed() Mat2[T] {
	m.Transpose()
	return m
}

// String renders m row by row.
func (m Mat2[T]) String() string {
	return formatRows(m.M[:], 2)
}

// Rotate2 returns a counter-clockwise rotation of angle radians.
func Rotate2[T scalar.Float](angle T) Mat2[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	return NewMat2(c, s, -s, c)
}

// Scale2 returns a scale by s along X and Y.
func Scale2[T scalar.Number](s vector.Vec2[T]) Mat2[T] {
	return NewMat2(s.X, 0, 0, s.Y)
}
