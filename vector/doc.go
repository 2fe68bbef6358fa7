// Package vector provides 2-, 3- and 4-component vectors generic over any
// integer or floating-point scalar.
//
// 🚀 What is in the box?
//
//	Vec2[T], Vec3[T], Vec4[T] value types with:
//	  • element-wise Add/Sub/Mul/Div against a vector or a scalar
//	  • Dot, Length, Normalize/Normalized, Abs, Min, Max
//	  • Cross and Rodrigues' RotateAroundAxis for Vec3
//	  • Perpendicular for Vec2 and Vec3
//	  • fmt.Stringer output "[x, y, z]" for logs and test failures
//	  • conversion to and from golang.org/x/image/math/f32 vectors
//
// ✨ Conventions:
//
//   - Every operation takes and returns values; nothing aliases.
//   - Component order is fixed: X, Y, Z, W.
//   - Each type starts with a structs.HostLayout marker, so the fields are
//     laid out as the platform C ABI would lay out an equivalent struct and
//     can be handed to vertex buffers directly.
//   - Misuse (division by zero, normalizing a zero vector, indexing out of
//     range) is a programming error and panics with a wrapped sentinel from
//     errors.go; recover() values satisfy errors.Is.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeom/vector"
//
//	p := vector.New3[float32](1, 0, 0)
//	q := p.RotateAroundAxis(math.Pi/2, vector.Up3[float32]()) // ≈ [0, 0, -1]
//	n := q.Cross(p).Normalized()
package vector
