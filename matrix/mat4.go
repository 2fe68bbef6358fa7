// SPDX-License-Identifier: MIT

package matrix

import (
	"structs"

	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Mat4 is a 4×4 column-major matrix. M[c*4+r] holds column c, row r.
type Mat4[T scalar.Number] struct {
	_ structs.HostLayout
	M [16]T
}

// Mat4f and Mat4d are the float32 and float64 instantiations.
type (
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

// Identity4 returns the 4×4 identity.
func Identity4[T scalar.Number]() Mat4[T] {
	var m Mat4[T]
	identity(m.M[:], 4)
	return m
}

// NewMat4 builds a matrix from 16 values given column by column
// (m00, m01, m02, m03 is the first column).
func NewMat4[T scalar.Number](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Mat4[T] {
	return Mat4[T]{M: [16]T{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}}
}

// FromCols4 builds a matrix from its four columns.
func FromCols4[T scalar.Number](c0, c1, c2, c3 vector.Vec4[T]) Mat4[T] {
	return NewMat4(
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	)
}

// At returns the element in column c, row r.
// Panics with ErrIndexOutOfRange if either index is outside [0, 4).
func (m Mat4[T]) At(c, r int) T {
	checkIndex(opAt, 4, c, r)
	return m.M[c*4+r]
}

// Set assigns the element in column c, row r.
// Panics with ErrIndexOutOfRange if either index is outside [0, 4).
func (m *Mat4[T]) Set(c, r int, v T) {
	checkIndex(opSet, 4, c, r)
	m.M[c*4+r] = v
}

// Col returns column c. Panics with ErrIndexOutOfRange if c is outside [0, 4).
func (m Mat4[T]) Col(c int) vector.Vec4[T] {
	checkIndex(opCol, 4, c, 0)
	return vector.New4(m.M[c*4], m.M[c*4+1], m.M[c*4+2], m.M[c*4+3])
}

// Row returns row r. Panics with ErrIndexOutOfRange if r is outside [0, 4).
func (m Mat4[T]) Row(r int) vector.Vec4[T] {
	checkIndex(opRow, 4, 0, r)
	return vector.New4(m.M[r], m.M[4+r], m.M[8+r], m.M[12+r])
}

// AddScalar adds f to every entry.
func (m Mat4[T]) AddScalar(f T) Mat4[T] {
	var out Mat4[T]
	ewScalar(out.M[:], m.M[:], f, add[T])
	return out
}

// SubScalar subtracts f from every entry.
func (m Mat4[T]) SubScalar(f T) Mat4[T] {
	var out Mat4[T]
	ewScalar(out.M[:], m.M[:], f, sub[T])
	return out
}

// MulScalar multiplies every entry by f.
func (m Mat4[T]) MulScalar(f T) Mat4[T] {
	var out Mat4[T]
	ewScalar(out.M[:], m.M[:], f, mul[T])
	return out
}

// DivScalar divides every entry by f. Panics with ErrDivisionByZero if f is zero.
func (m Mat4[T]) DivScalar(f T) Mat4[T] {
	if f == 0 {
		matrixPanic(opDivScalar, ErrDivisionByZero)
	}
	var out Mat4[T]
	ewScalar(out.M[:], m.M[:], f, div[T])
	return out
}

// Add returns the element-wise sum m + rhs.
func (m Mat4[T]) Add(rhs Mat4[T]) Mat4[T] {
	var out Mat4[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], add[T])
	return out
}

// Sub returns the element-wise difference m - rhs.
func (m Mat4[T]) Sub(rhs Mat4[T]) Mat4[T] {
	var out Mat4[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], sub[T])
	return out
}

// Div returns the element-wise quotient m / rhs.
// Panics with ErrDivisionByZero if any entry of rhs is zero.
func (m Mat4[T]) Div(rhs Mat4[T]) Mat4[T] {
	requireNonZero(opDiv, rhs.M[:])
	var out Mat4[T]
	ewPair(out.M[:], m.M[:], rhs.M[:], div[T])
	return out
}

// Mul returns the matrix product m·rhs (rhs is applied first).
//
// Complexity: O(64) multiply-adds.
func (m Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	var out Mat4[T]
	mulColMajor(out.M[:], m.M[:], rhs.M[:], 4)
	return out
}

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v vector.Vec4[T]) vector.Vec4[T] {
	var out [4]T
	in := v.Array()
	mulVecColMajor(out[:], m.M[:], in[:], 4)
	return vector.New4(out[0], out[1], out[2], out[3])
}

// MulPoint transforms p as a point (w = 1) and drops the resulting w.
// No perspective divide is performed.
func (m Mat4[T]) MulPoint(p vector.Vec3[T]) vector.Vec3[T] {
	return m.MulVec(vector.FromVec3(p, 1)).XYZ()
}

// MulDir transforms d as a direction (w = 0); translation does not apply.
func (m Mat4[T]) MulDir(d vector.Vec3[T]) vector.Vec3[T] {
	return m.MulVec(vector.FromVec3(d, 0)).XYZ()
}

// Transpose transposes m in place.
func (m *Mat4[T]) Transpose() {
	transposeInPlace(m.M[:], 4)
}

// Transposed returns the transpose of m, leaving m unchanged.
func (m Mat4[T]) Transposed() Mat4[T] {
	m.Transpose()
	return m
}

// String renders m row by row.
func (m Mat4[T]) String() string {
	return formatRows(m.M[:], 4)
}

// RotateAroundX4 returns a rotation of angle radians about the X axis.
func RotateAroundX4[T scalar.Float](angle T) Mat4[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	m := Identity4[T]()
	m.M[5], m.M[6] = c, s   // m11, m12
	m.M[9], m.M[10] = -s, c // m21, m22
	return m
}

// RotateAroundY4 returns a rotation of angle radians about the Y axis.
// The sine terms sit at m02 (+) and m20 (-), so +X turns toward +Z.
// This is the opposite sense of vector.Vec3.RotateAroundAxis about +Y:
// RotateAroundY4(a) matches RotateAroundAxis(-a, vector.Up3()).
func RotateAroundY4[T scalar.Float](angle T) Mat4[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	m := Identity4[T]()
	m.M[0], m.M[2] = c, s   // m00, m02
	m.M[8], m.M[10] = -s, c // m20, m22
	return m
}

// RotateAroundZ4 returns a rotation of angle radians about the Z axis.
func RotateAroundZ4[T scalar.Float](angle T) Mat4[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	m := Identity4[T]()
	m.M[0], m.M[1] = c, s  // m00, m01
	m.M[4], m.M[5] = -s, c // m10, m11
	return m
}

// Translate4 returns a translation by t.
func Translate4[T scalar.Number](t vector.Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m.M[12], m.M[13], m.M[14] = t.X, t.Y, t.Z
	return m
}

// Scale4 returns a scale by s along X, Y and Z.
func Scale4[T scalar.Number](s vector.Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m.M[0], m.M[5], m.M[10] = s.X, s.Y, s.Z
	return m
}
