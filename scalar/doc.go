// Package scalar holds the numeric constraints and small scalar helpers that
// every other lvlgeom package is built on.
//
// 🚀 What lives here?
//
//   - Type sets: Number (any integer or float), Float, Signed.
//   - Ordering helpers: Min, Max, Abs, Clamp, Saturate, Step.
//   - Interpolation: Lerp, LerpClamp.
//   - Angles: DegToRad, RadToDeg.
//   - Rounding: Floor, Ceil, Round.
//   - Transcendentals with a float32 fast path: Sqrt, Sin, Cos, Tan, Exp, Log.
//   - Powers of two: PowerOfTwo, IsPowerOfTwo.
//
// All functions are pure, allocation-free and safe for concurrent use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeom/scalar"
//
//	a := scalar.Clamp(1.7, 0.0, 1.0)        // 1
//	r := scalar.DegToRad[float32](90)       // π/2
//	n := scalar.PowerOfTwo(300)             // 512
package scalar
