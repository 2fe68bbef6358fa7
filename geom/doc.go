// Package geom provides elementary geometric primitives: an oriented plane
// and point-generic triangle and quad aggregates.
//
// 🚀 What is in the box?
//
//	Plane[T]     — normal + origin + offset d, kept consistent by construction:
//	                 • Distance(p)  unsigned distance |n·p + d|
//	                 • Project(p)   orthogonal projection onto the plane
//	                 • Location(x, y) the point (x, y, z) lying on the plane
//	Triangle[P]  — three points A, B, C of any point type
//	Quad[P]      — four points A, B, C, D of any point type
//
// ✨ Invariants:
//
//   - A Plane's normal is always unit length and d == -n·origin. The fields
//     are unexported; NewPlane and Update are the only ways to set them.
//   - Triangle and Quad are plain data. Winding, area, adjacency and other
//     mesh topology belong to the caller.
//
// ⚙️ Usage:
//
//	ground := geom.NewPlane(vector.Up3[float32](), vector.Zero3[float32]())
//	h := ground.Distance(vector.New3[float32](1, 3, 2)) // 3
package geom
