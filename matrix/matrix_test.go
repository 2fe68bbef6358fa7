package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/katalvlaran/lvlgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentity_IsNeutral checks I·A == A·I == A for every size.
func TestIdentity_IsNeutral(t *testing.T) {
	t.Parallel()

	a2 := matrix.NewMat2(1, 2, 3, 4)
	assert.Equal(t, a2, matrix.Identity2[int]().Mul(a2))
	assert.Equal(t, a2, a2.Mul(matrix.Identity2[int]()))

	a3 := matrix.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, a3, matrix.Identity3[int]().Mul(a3))
	assert.Equal(t, a3, a3.Mul(matrix.Identity3[int]()))

	a4 := matrix.NewMat4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	assert.Equal(t, a4, matrix.Identity4[int]().Mul(a4))
	assert.Equal(t, a4, a4.Mul(matrix.Identity4[int]()))
}

// TestZeroValue_IsZeroMatrix documents that the zero value is not the identity.
func TestZeroValue_IsZeroMatrix(t *testing.T) {
	t.Parallel()

	var m matrix.Mat4f
	assert.NotEqual(t, matrix.Identity4[float32](), m)
	assert.Equal(t, vector.Zero4[float32](), m.MulVec(vector.One4[float32]()))
}

// TestLayout_ColumnMajor pins the storage order: M[c*n+r].
func TestLayout_ColumnMajor(t *testing.T) {
	t.Parallel()

	m := matrix.NewMat3(
		1, 2, 3, // column 0
		4, 5, 6, // column 1
		7, 8, 9, // column 2
	)
	assert.Equal(t, 4, m.At(1, 0))
	assert.Equal(t, 8, m.At(2, 1))
	assert.Equal(t, vector.New3(4, 5, 6), m.Col(1))
	assert.Equal(t, vector.New3(2, 5, 8), m.Row(1))

	m.Set(0, 2, 42)
	assert.Equal(t, 42, m.M[2])

	c := matrix.FromCols3(vector.New3(1, 2, 3), vector.New3(4, 5, 6), vector.New3(7, 8, 9))
	assert.Equal(t, matrix.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9), c)
}

// TestTranspose_Involution checks (Aᵀ)ᵀ == A and that Transposed leaves the receiver alone.
func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	a := matrix.NewMat4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	at := a.Transposed()
	assert.NotEqual(t, a, at)
	assert.Equal(t, a.Row(2), at.Col(2))
	assert.Equal(t, a, at.Transposed())

	b := matrix.NewMat2(1, 2, 3, 4)
	b.Transpose()
	assert.Equal(t, matrix.NewMat2(1, 3, 2, 4), b)
}

// TestMul_Associativity checks (A·B)·v == A·(B·v).
func TestMul_Associativity(t *testing.T) {
	t.Parallel()

	a := matrix.NewMat3(2, 0, 1, -1, 3, 0, 4, 1, 1)
	b := matrix.NewMat3(1, 1, 0, 0, 2, 5, -3, 0, 1)
	v := vector.New3(1, -2, 3)

	assert.Equal(t, a.MulVec(b.MulVec(v)), a.Mul(b).MulVec(v))

	a2 := matrix.NewMat2(1, 2, 3, 4)
	b2 := matrix.NewMat2(0, 1, -1, 0)
	v2 := vector.New2(5, 7)
	assert.Equal(t, a2.MulVec(b2.MulVec(v2)), a2.Mul(b2).MulVec(v2))
}

// TestMat4_TranslateScaleCompose checks composition order: the right operand applies first.
func TestMat4_TranslateScaleCompose(t *testing.T) {
	t.Parallel()

	m := matrix.Translate4(vector.New3(1, 2, 3)).Mul(matrix.Scale4(vector.New3(2, 2, 2)))
	assert.Equal(t, vector.New3(3, 4, 5), m.MulPoint(vector.New3(1, 1, 1)))
	assert.Equal(t, vector.New3(2, 2, 2), m.MulDir(vector.New3(1, 1, 1)))
}

// TestRotations_QuarterTurn checks each axis rotation at θ = π/2.
func TestRotations_QuarterTurn(t *testing.T) {
	t.Parallel()

	const q = math.Pi / 2
	cases := []struct {
		name string
		m    matrix.Mat4d
		in   vector.Vec3d
		want vector.Vec3d
	}{
		{"X: +Y → +Z", matrix.RotateAroundX4(q), vector.New3(0.0, 1, 0), vector.New3(0.0, 0, 1)},
		{"Y: +X → +Z", matrix.RotateAroundY4(q), vector.New3(1.0, 0, 0), vector.New3(0.0, 0, 1)},
		{"Z: +X → +Y", matrix.RotateAroundZ4(q), vector.New3(1.0, 0, 0), vector.New3(0.0, 1, 0)},
	}
	for _, tc := range cases {
		got := tc.m.MulDir(tc.in)
		assert.InDelta(t, tc.want.X, got.X, eps, tc.name)
		assert.InDelta(t, tc.want.Y, got.Y, eps, tc.name)
		assert.InDelta(t, tc.want.Z, got.Z, eps, tc.name)
	}

	// The 3×3 forms share the 4×4 layout.
	for _, pair := range [][2]matrix.Mat3d{
		{matrix.RotateAroundX3(0.7), upperLeft(matrix.RotateAroundX4(0.7))},
		{matrix.RotateAroundY3(0.7), upperLeft(matrix.RotateAroundY4(0.7))},
		{matrix.RotateAroundZ3(0.7), upperLeft(matrix.RotateAroundZ4(0.7))},
	} {
		assert.Equal(t, pair[1], pair[0])
	}

	r := matrix.Rotate2(q).MulVec(vector.New2(1.0, 0))
	assert.InDelta(t, 0, r.X, eps)
	assert.InDelta(t, 1, r.Y, eps)
}

// TestRotateAroundY_OppositeToAxisRotation pins the sense of the Y builders
// against vector.Vec3.RotateAroundAxis: RotateAroundY(a) == RotateAroundAxis(-a, +Y).
func TestRotateAroundY_OppositeToAxisRotation(t *testing.T) {
	t.Parallel()

	points := []vector.Vec3d{
		vector.New3(1.0, 0, 0),
		vector.New3(0.0, 0, 1),
		vector.New3(2.0, -3, 0.5),
	}
	for _, angle := range []float64{math.Pi / 2, 0.7, -1.3} {
		m4 := matrix.RotateAroundY4(angle)
		m3 := matrix.RotateAroundY3(angle)
		for _, p := range points {
			want := p.RotateAroundAxis(-angle, vector.Up3[float64]())
			for name, got := range map[string]vector.Vec3d{"Y4": m4.MulDir(p), "Y3": m3.MulVec(p)} {
				assert.InDelta(t, want.X, got.X, eps, "%s angle %v point %v", name, angle, p)
				assert.InDelta(t, want.Y, got.Y, eps, "%s angle %v point %v", name, angle, p)
				assert.InDelta(t, want.Z, got.Z, eps, "%s angle %v point %v", name, angle, p)
			}
		}
	}
}

func upperLeft(m matrix.Mat4d) matrix.Mat3d {
	return matrix.FromCols3(m.Col(0).XYZ(), m.Col(1).XYZ(), m.Col(2).XYZ())
}

// TestScale checks the diagonal scale builders.
func TestScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.New2(6, 10), matrix.Scale2(vector.New2(2, 5)).MulVec(vector.New2(3, 2)))
	assert.Equal(t, vector.New3(2, 6, 12), matrix.Scale3(vector.New3(2, 3, 4)).MulVec(vector.New3(1, 2, 3)))
}

// TestElementwise covers the scalar and pairwise operators.
func TestElementwise(t *testing.T) {
	t.Parallel()

	a := matrix.NewMat2[float32](2, 4, 6, 8)
	b := matrix.NewMat2[float32](1, 2, 3, 4)

	assert.Equal(t, matrix.NewMat2[float32](3, 6, 9, 12), a.Add(b))
	assert.Equal(t, matrix.NewMat2[float32](1, 2, 3, 4), a.Sub(b))
	assert.Equal(t, matrix.NewMat2[float32](2, 2, 2, 2), a.Div(b))
	assert.Equal(t, matrix.NewMat2[float32](3, 5, 7, 9), a.AddScalar(1))
	assert.Equal(t, matrix.NewMat2[float32](1, 3, 5, 7), a.SubScalar(1))
	assert.Equal(t, matrix.NewMat2[float32](4, 8, 12, 16), a.MulScalar(2))
	assert.Equal(t, matrix.NewMat2[float32](1, 2, 3, 4), a.DivScalar(2))

	i3 := matrix.Identity3[float64]()
	assert.Equal(t, matrix.Identity3[float64]().MulScalar(3), i3.Add(i3).Add(i3))
	i4 := matrix.Identity4[int]()
	assert.Equal(t, matrix.Identity4[int](), i4.MulScalar(4).Sub(i4.MulScalar(3)))
}

// TestDivision_ZeroPanics ensures zero divisors are rejected before writing.
func TestDivision_ZeroPanics(t *testing.T) {
	t.Parallel()

	requirePanicIs(t, matrix.ErrDivisionByZero, func() {
		matrix.Identity4[float32]().DivScalar(0)
	})
	// The identity has zeros off the diagonal.
	requirePanicIs(t, matrix.ErrDivisionByZero, func() {
		matrix.Identity3[float64]().Div(matrix.Identity3[float64]())
	})
	requirePanicIs(t, matrix.ErrDivisionByZero, func() {
		matrix.NewMat2(1, 1, 1, 1).Div(matrix.NewMat2(1, 1, 0, 1))
	})
}

// TestIndex_OutOfRangePanics covers At, Set, Col and Row bounds.
func TestIndex_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	m := matrix.Identity4[float32]()
	requirePanicIs(t, matrix.ErrIndexOutOfRange, func() { m.At(4, 0) })
	requirePanicIs(t, matrix.ErrIndexOutOfRange, func() { m.At(0, -1) })
	requirePanicIs(t, matrix.ErrIndexOutOfRange, func() { m.Set(0, 4, 1) })
	requirePanicIs(t, matrix.ErrIndexOutOfRange, func() { m.Col(-1) })

	m2 := matrix.Identity2[int]()
	requirePanicIs(t, matrix.ErrIndexOutOfRange, func() { m2.Row(2) })
	m3 := matrix.Identity3[int]()
	requirePanicIs(t, matrix.ErrIndexOutOfRange, func() { m3.At(3, 3) })
}

// TestString renders row by row.
func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[[1, 3], [2, 4]]", matrix.NewMat2(1, 2, 3, 4).String())
	assert.Equal(t, "[[1, 0, 0], [0, 1, 0], [0, 0, 1]]", matrix.Identity3[int]().String())
}

// TestF32_RoundTrip checks the row-major conversion into x/image/math/f32.
func TestF32_RoundTrip(t *testing.T) {
	t.Parallel()

	m := matrix.Translate4(vector.New3[float32](7, 8, 9))
	a := m.F32()
	require.Equal(t, float32(7), a[3])
	require.Equal(t, float32(8), a[7])
	require.Equal(t, float32(9), a[11])
	assert.Equal(t, m, matrix.FromF32Mat4[float32](a))

	m3 := matrix.NewMat3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	a3 := m3.F32()
	assert.Equal(t, float32(4), a3[1]) // row 0, column 1
	assert.Equal(t, m3, matrix.FromF32Mat3[float32](a3))
}
