// Package camera builds the projection and view matrices a renderer feeds
// to its vertex stage.
//
// 🚀 What is in the box?
//
//	Orthographic(width, height, near, far)  — parallel projection
//	Perspective(fovy, aspect, near, far)    — symmetric frustum
//	LookAt(eye, center, up)                 — world → view transform
//
// ✨ Conventions (OpenGL):
//
//   - Right-handed view space; the camera looks down -Z.
//   - Clip space is [-1, 1] on every axis after the perspective divide;
//     the near plane maps to z = -1 and the far plane to z = +1.
//   - Results are column-major matrix.Mat4 values; compose them as
//     projection.Mul(view).Mul(model).
//
// Degenerate inputs (empty view volume, near ≥ far, a field of view outside
// (0, π), eye == center, up parallel to the view direction) panic with a
// wrapped sentinel from errors.go.
package camera
