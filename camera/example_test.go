package camera_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/camera"
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// ExamplePerspective projects a point through a full camera pipeline.
//
// Scenario:
//
//	camera at [0, 0, 10] looking at the origin, 90° vertical fov, square viewport
//	world point [2, 2, 0] is 10 units ahead, so it lands at [0.2, 0.2] in NDC
func ExamplePerspective() {
	view := camera.LookAt(vector.New3(0.0, 0, 10), vector.Zero3[float64](), vector.Up3[float64]())
	proj := camera.Perspective(scalar.DegToRad(90.0), 1, 0.1, 100)

	clip := proj.Mul(view).MulVec(vector.New4(2.0, 2, 0, 1))
	ndc := clip.XYZ().DivScalar(clip.W)

	fmt.Printf("x=%.2f y=%.2f depth<1: %v\n", ndc.X, ndc.Y, ndc.Z < 1)
	// Output:
	// x=0.20 y=0.20 depth<1: true
}
