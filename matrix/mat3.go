// SPDX-License-Identifier: MIT

package matrix

import (
	"structs"

	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Mat3 is a 3×3 column-major matrix. M[c*3+r] holds column c, row r.
type Mat3[T scalar.Number] struct {
	_ structs.HostLayout
	M [9]T
}

// Mat3f and Mat3d are the float32 and float64 instantiations.
type (
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
)

// Identity3 returns the 3×3 identity.
func Identity3[T scalar.Number]() Mat3[T] {
	var m Mat3[T]
	identity(m.M[:], 3)
	return m
}

// NewMat3 builds a matrix from 9 values given column by column.
func NewMat3[T scalar.Number](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Mat3[T] {
	return Mat3[T]{M: [9]T{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}}
}

// FromCols3 builds a matrix from its three columns.
func FromCols3[T scalar.Number](c0, c1, c2 vector.Vec3[T]) Mat3[T] {
	return NewMat3(
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	)
}

// At returns the element in column c, row r.
func (m Mat3[T]) At(c, r int) T {
	checkIndex(opAt, 3, c, r)
	return m.M[c*3+r]
}

// Set assigns the element in column c, row r.
func (m *Mat3[T]) Set(c, r int, v T) {
	checkIndex(opSet, 3, c, r)
	m.M[c*3+r] = v
}

// Col returns column c.
func (m Mat3[T]) Col(c int) vector.Vec3[T] {
	checkIndex(opCol, 3, c, 0)
	return vector.New3(m.M[c*3], m.M[c*3+1], m.M[c*3+2])
}

// Row returns row r.
func (m Mat3[T]) Row(r int) vector.Vec3[T] {
	checkIndex(opRow, 3, 0, r)
	return vector.New3(m.M[r], m.M[3+r], m.M[6+r])
}

// AddScalar adds f to every entry.
func (m Mat3[T]) AddScalar(f T) Mat3[T] {
	var out Mat3[T]
	ewScalar(out.M[:], m.M[:], f, add[T])
	return out
}

// SubScalar subtracts f from every entry.
func (m Mat3[T]) SubScalar(f T) Mat3[T] {
	var out Mat3[T]
	ewScalar(out.M[:], m.M[:], f, sub[T])
	return out
}

// MulScalar multiplies every entry by f.
func (m Mat3[T]) MulScalar(f T) Mat3[T] {
	var out Mat3[T]
	ewScalar(out.M[:], m.M[:], f, mul[T])
	return out
}

// DivScalar divides every entry by f. Panics with ErrDivisionByZero if f is zero.
func (m Mat3[T]) DivScalar(f T) Mat3[T] {
	if f == 0 {
		matrixPanic(opDivScalar, ErrDivisionByZero)
	}
	var out Mat3[T]
	ewScalar(out.M[:], m.M[:], f, div[T])
	return out
}

// Add returns the element-wise sum m + rhs.
func (m Mat3[T]) Add(rhs Mat3[T]) Mat3[T] {
	var out Mat3[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], add[T])
	return out
}

// Sub returns the element-wise difference m - rhs.
func (m Mat3[T]) Sub(rhs Mat3[T]) Mat3[T] {
	var out Mat3[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], sub[T])
	return out
}

// Div returns the element-wise quotient m / rhs.
// Panics with ErrDivisionByZero if any entry of rhs is zero.
func (m Mat3[T]) Div(rhs Mat3[T]) Mat3[T] {
	requireNonZero(opDiv, rhs.M[:])
	var out Mat3[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], div[T])
	return out
}

// Mul returns the matrix product m·rhs (rhs is applied first).
func (m Mat3[T]) Mul(rhs Mat3[T]) Mat3[T] {
	var out Mat3[T]
	mulColMajor(out.M[:], m.M[:], rhs.M[:], 3)
	return out
}

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v vector.Vec3[T]) vector.Vec3[T] {
	var out [3]T
	in := v.Array()
	mulVecColMajor(out[:], m.M[:], in[:], 3)
	return vector.New3(out[0], out[1], out[2])
}

// Transpose transposes m in place.
func (m *Mat3[T]) Transpose() {
	transposeInPlace(m.M[:], 3)
}

// Transposed returns the transpose of m, leaving m unchanged.
func (m Mat3[T]) Transposed() Mat3[T] {
	m.Transpose()
	return m
}

// String renders m row by row.
func (m Mat3[T]) String() string {
	return formatRows(m.M[:], 3)
}

// RotateAroundX3 returns a rotation of angle radians about the X axis.
func RotateAroundX3[T scalar.Float](angle T) Mat3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	m := Identity3[T]()
	m.M[4], m.M[5] = c, s  // m11, m12
	m.M[7], m.M[8] = -s, c // m21, m22
	return m
}

// RotateAroundY3 returns a rotation of angle radians about the Y axis,
// laid out like RotateAroundY4: +X turns toward +Z, the opposite sense of
// vector.Vec3.RotateAroundAxis about +Y. RotateAroundY3(a) matches
// RotateAroundAxis(-a, vector.Up3()).
func RotateAroundY3[T scalar.Float](angle T) Mat3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	m := Identity3[T]()
	m.M[0], m.M[2] = c, s  // m00, m02
	m.M[6], m.M[8] = -s, c // m20, m22
	return m
}

// RotateAroundZ3 returns a rotation of angle radians about the Z axis.
func RotateAroundZ3[T scalar.Float](angle T) Mat3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	m := Identity3[T]()
	m.M[0], m.M[1] = c, s  // m00, m01
	m.M[3], m.M[4] = -s, c // m10, m11
	return m
}

// Scale3 returns a scale by s along X, Y and Z.
func Scale3[T scalar.Number](s vector.Vec3[T]) Mat3[T] {
	m := Identity3[T]()
	m.M[0], m.M[4], m.M[8] = s.X, s.Y, s.Z
	return m
}
