package color_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/color"
)

// ExampleFromKelvin compares a candle flame with overcast daylight.
func ExampleFromKelvin() {
	candle := color.FromKelvin[float32](1500)
	daylight := color.FromKelvin[float32](6500)

	fmt.Printf("candle:   r=%.2f g=%.2f b=%.2f\n", candle.R, candle.G, candle.B)
	fmt.Printf("daylight: r=%.2f g=%.2f b=%.2f\n", daylight.R, daylight.G, daylight.B)
	// Output:
	// candle:   r=1.00 g=0.42 b=0.00
	// daylight: r=1.00 g=0.98 b=1.00
}
