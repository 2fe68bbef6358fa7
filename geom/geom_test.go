package geom_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeom/geom"
	"github.com/katalvlaran/lvlgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// TestPlane_Invariant checks |n| == 1 and d == -n·origin after construction and Update.
func TestPlane_Invariant(t *testing.T) {
	t.Parallel()

	p := geom.NewPlane(vector.New3(0.0, 0, 5), vector.New3(1.0, 2, 3))
	assert.InDelta(t, 1, p.Normal().Length(), eps)
	assert.Equal(t, vector.New3(0.0, 0, 1), p.Normal())
	assert.InDelta(t, -3, p.D(), eps)
	assert.Equal(t, vector.New3(1.0, 2, 3), p.Origin())

	p.Update(vector.New3(3.0, 4, 0), vector.New3(1.0, 1, 1))
	assert.InDelta(t, 1, p.Normal().Length(), eps)
	assert.InDelta(t, -p.Normal().Dot(p.Origin()), p.D(), eps)

	requirePanicIs(t, vector.ErrZeroLength, func() {
		geom.NewPlane(vector.Zero3[float32](), vector.One3[float32]())
	})
}

// TestPlane_Distance measures a point three units above the ground plane.
func TestPlane_Distance(t *testing.T) {
	t.Parallel()

	ground := geom.NewPlane(vector.Up3[float32](), vector.Zero3[float32]())
	assert.InDelta(t, 3, ground.Distance(vector.New3[float32](0, 3, 0)), eps)
	assert.InDelta(t, 3, ground.Distance(vector.New3[float32](7, -3, 2)), eps)
	assert.InDelta(t, -3, ground.SignedDistance(vector.New3[float32](7, -3, 2)), eps)

	tilted := geom.NewPlane(vector.New3(1.0, 1, 1), vector.New3(1.0, 0, 0))
	assert.InDelta(t, 0, tilted.Distance(vector.New3(0.0, 1, 0)), eps)
}

// TestPlane_Project lands on the plane and moves along the normal only.
func TestPlane_Project(t *testing.T) {
	t.Parallel()

	p := geom.NewPlane(vector.New3(1.0, 2, 2), vector.New3(0.0, 1, 0))
	pt := vector.New3(4.0, -1, 6)

	proj := p.Project(pt)
	assert.InDelta(t, 0, p.Distance(proj), eps)

	cross := pt.Sub(proj).Cross(p.Normal())
	assert.InDelta(t, 0, cross.Length(), eps)

	ground := geom.NewPlane(vector.Up3[float32](), vector.Zero3[float32]())
	assert.Equal(t, vector.New3[float32](5, 0, -2), ground.Project(vector.New3[float32](5, 9, -2)))
}

// TestPlane_Location solves for z and rejects planes parallel to Z.
func TestPlane_Location(t *testing.T) {
	t.Parallel()

	p := geom.NewPlane(vector.New3(1.0, 1, 2), vector.New3(0.0, 0, 3))
	q := p.Location(2, -1)
	assert.Equal(t, 2.0, q.X)
	assert.Equal(t, -1.0, q.Y)
	assert.InDelta(t, 0, p.Distance(q), eps)

	wall := geom.NewPlane(vector.New3[float32](1, 0, 0), vector.Zero3[float32]())
	requirePanicIs(t, geom.ErrVerticalPlane, func() { wall.Location(1, 1) })
}

// TestPlane_String keeps the debug label.
func TestPlane_String(t *testing.T) {
	t.Parallel()

	p := geom.NewPlane(vector.Up3[float32](), vector.New3[float32](1, 2, 3))
	assert.Equal(t, "plane [normal:[0, 1, 0], origin: [1, 2, 3]]", p.String())
}

// TestPolygons covers indexing, Points and formatting.
func TestPolygons(t *testing.T) {
	t.Parallel()

	a, b, c, d := vector.New2(0.0, 0), vector.New2(1.0, 0), vector.New2(1.0, 1), vector.New2(0.0, 1)

	tri := geom.NewTriangle(a, b, c)
	assert.Equal(t, b, tri.At(1))
	assert.Equal(t, [3]vector.Vec2d{a, b, c}, tri.Points())
	assert.Equal(t, "[[0, 0], [1, 0], [1, 1]]", tri.String())
	requirePanicIs(t, geom.ErrIndexOutOfRange, func() { tri.At(3) })

	var quad geom.Quad2d = geom.NewQuad(a, b, c, d)
	assert.Equal(t, d, quad.At(3))
	assert.Equal(t, [4]vector.Vec2d{a, b, c, d}, quad.Points())
	assert.Equal(t, "[[0, 0], [1, 0], [1, 1], [0, 1]]", quad.String())
	requirePanicIs(t, geom.ErrIndexOutOfRange, func() { quad.At(-1) })

	// Comparable point types give == for free.
	assert.True(t, tri == geom.NewTriangle(a, b, c))

	// Any point type works.
	ids := geom.NewTriangle("a", "b", "c")
	assert.Equal(t, "[a, b, c]", ids.String())
}
