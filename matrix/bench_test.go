package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/katalvlaran/lvlgeom/vector"
)

// BenchmarkMat4_Mul measures one 4×4 product on the float32 path.
func BenchmarkMat4_Mul(b *testing.B) {
	a := matrix.RotateAroundY4[float32](0.3)
	m := matrix.Translate4(vector.New3[float32](1, 2, 3))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m = a.Mul(m)
	}
}

// BenchmarkMat4_MulPoint measures a single point transform.
func BenchmarkMat4_MulPoint(b *testing.B) {
	m := matrix.Translate4(vector.New3(1.0, 2, 3)).Mul(matrix.RotateAroundX4(0.5))
	p := vector.New3(0.5, 0.25, -1)
	var sink vector.Vec3d

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = m.MulPoint(p)
	}
	_ = sink
}
