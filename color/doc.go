// Package color provides a four-channel RGBA color generic over its channel
// scalar, plus a black-body (color temperature) approximation.
//
// 🚀 What is in the box?
//
//	RGBA[T] with per-channel Add/Sub/Mul/Div (color or scalar), Saturate,
//	and "[r, g, b, a]" formatting. Aliases cover the usual channel types:
//	  • RGBA8   — 8-bit unsigned channels in [0, 255]
//	  • RGBA32f — float32 channels in [0, 1]
//	  • RGBA64f — float64 channels in [0, 1]
//
//	FromKelvin(k) maps a temperature in Kelvin to the color of a black body
//	at that temperature (Planckian locus fit), saturated to [0, 1].
//
// ✨ Conventions:
//
//   - Channels are straight (not premultiplied); no invariant ties RGB to A.
//   - The zero value is transparent black.
//   - Division by zero panics with a wrapped ErrDivisionByZero.
//
// ⚙️ Usage:
//
//	warm := color.FromKelvin[float32](2700)
//	dim := warm.MulScalar(0.5)
//	fmt.Println(dim) // ≈ [0.5, 0.33, 0.17, 0.5]
package color
