// Package lvlgeom is a small numeric foundation for rendering and
// simulation code: vectors, matrices, cameras, colors, planes and seeded
// random sampling, all generic over the scalar type.
//
// 🚀 What is in the box?
//
//	scalar/  — Number/Float constraints, Clamp, Lerp, Saturate, trig with a float32 fast path
//	vector/  — Vec2/Vec3/Vec4: element-wise algebra, Dot, Cross, Normalize, Rodrigues rotation
//	matrix/  — Mat2/Mat3/Mat4, column-major: products, transpose, rotate/scale/translate builders
//	camera/  — Orthographic, Perspective and LookAt (OpenGL clip conventions)
//	geom/    — Plane (distance, projection, height lookup), Triangle and Quad
//	color/   — RGBA over any channel type, black-body FromKelvin
//	random/  — PCG32 Generator, uniform helpers, Range with Uniform/Gaussian modes
//
// ✨ Conventions shared by every package:
//
//   - Value types only; operations return new values, so nothing aliases.
//   - Each vector, matrix and color starts with a structs.HostLayout marker
//     and can be copied straight into GPU-bound buffers.
//   - Misuse (division by zero, degenerate camera input, empty ranges) is a
//     programming error: it panics with a wrapped sentinel error, and the
//     recovered value satisfies errors.Is.
//   - Every type implements fmt.Stringer for logs and test failures.
//
// Quick example:
//
//	view := camera.LookAt(vector.New3[float32](0, 2, 6), vector.Zero3[float32](), vector.Up3[float32]())
//	proj := camera.Perspective(scalar.DegToRad[float32](60), 16.0/9.0, 0.1, 100)
//	mvp := proj.Mul(view).Mul(matrix.RotateAroundY4[float32](0.5))
//
//	go get github.com/katalvlaran/lvlgeom
package lvlgeom
