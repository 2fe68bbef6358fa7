// SPDX-License-Identifier: MIT

package color

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// Fit coefficients for the black-body approximation, in 8-bit channel units.
// Temperatures are expressed in hundreds of Kelvin.
const (
	kelvinBreak     = 66 // below: red pinned at 255; above: blue pinned at 255
	kelvinBlueFloor = 19 // below: no blue at all

	redA, redB, redC = 351.97690566805693, 0.114206453784165, -40.25366309332127

	greenLowA, greenLowB, greenLowC    = -155.25485562709179, -0.44596950469579133, 104.49216199393888
	greenHighA, greenHighB, greenHighC = 325.4494125711974, 0.07943456536662342, -28.0852963507957

	blueA, blueB, blueC = -254.76935184120902, 0.8274096064007395, 115.67994401066147
)

// FromKelvin returns the approximate color of a black body at the given
// temperature, with every channel saturated to [0, 1] and alpha 1.
//
// The fit is piecewise in temp = kelvin/100:
//
//	red   = 1                                   if temp < 66
//	        (a + b·(temp-55) + c·ln(temp-55))/255  otherwise
//	green = low fit over (temp-2)               if temp < 66
//	        high fit over (temp-50)              otherwise
//	blue  = 1                                   if temp > 66
//	        0                                   if temp < 19
//	        (a + b·(temp-10) + c·ln(temp-10))/255  otherwise
//
// The arithmetic runs in float32 regardless of T.
func FromKelvin[T scalar.Float](kelvin float32) RGBA[T] {
	temp := kelvin / 100

	var r, g, b float32
	if temp < kelvinBreak {
		r = 1
		x := temp - 2
		g = (greenLowA + greenLowB*x + greenLowC*math32.Log(x)) / 255
	} else {
		x := temp - 55
		r = (redA + redB*x + redC*math32.Log(x)) / 255
		x = temp - 50
		g = (greenHighA + greenHighB*x + greenHighC*math32.Log(x)) / 255
	}

	switch {
	case temp > kelvinBreak:
		b = 1
	case temp < kelvinBlueFloor:
		b = 0
	default:
		x := temp - 10
		b = (blueA + blueB*x + blueC*math32.Log(x)) / 255
	}

	return RGBA[T]{R: T(r), G: T(g), B: T(b), A: 1}.Saturate()
}
