// Package matrix provides 2×2, 3×3 and 4×4 matrices generic over any integer
// or floating-point scalar, stored column-major.
//
// 🚀 Layout
//
//	Mat4 stores its 16 scalars in M, column after column:
//
//	  [ M[0]  M[4]  M[8]  M[12] ]     [ m00 m10 m20 m30 ]
//	  [ M[1]  M[5]  M[9]  M[13] ]  =  [ m01 m11 m21 m31 ]
//	  [ M[2]  M[6]  M[10] M[14] ]     [ m02 m12 m22 m32 ]
//	  [ M[3]  M[7]  M[11] M[15] ]     [ m03 m13 m23 m33 ]
//
//	where m{c}{r} is column c, row r; At(c, r) and Set(c, r, v) address it.
//	The translation of a Mat4 lives in M[12], M[13], M[14].
//
// ✨ Semantics
//
//   - Mul is the matrix product. Composition reads right to left:
//     a.Mul(b).MulVec(v) == a.MulVec(b.MulVec(v)).
//   - Add, Sub, Div and the *Scalar operators are element-wise over all
//     N² entries; the package treats matrices as flat arrays for everything
//     except Mul/MulVec.
//   - The zero value is the zero matrix. Start from Identity2/3/4.
//   - There is no inverse or determinant. Keep forward and inverse transforms
//     side by side when both are needed.
//   - Division by a zero entry or index misuse panics with a wrapped sentinel
//     from errors.go.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeom/matrix"
//
//	model := matrix.Translate4(pos).Mul(matrix.RotateAroundY4(yaw)).Mul(matrix.Scale4(size))
//	world := model.MulPoint(local)
//
// Performance: every operation is O(N²) or O(N³) on a fixed-size array and
// allocates nothing.
package matrix
