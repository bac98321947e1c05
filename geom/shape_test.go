package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleTriangles(t *testing.T) {
	c := Color{1, 0, 0, 1}
	tris := Rectangle{MinX: 0, MaxX: 2, MinY: 0, MaxY: 1, Z: -0.5}.Triangles(c)

	require.Len(t, tris.Vertices, 4)
	assert.Equal(t, []uint16{0, 1, 2, 2, 3, 0}, tris.Indexes)
	for _, v := range tris.Vertices {
		assert.Equal(t, c, v.Color)
		assert.Equal(t, float32(-0.5), v.Z)
	}
	assert.Equal(t, float32(2), tris.Vertices[1].X)
	assert.Equal(t, float32(1), tris.Vertices[2].Y)
}

func TestCircleTriangles(t *testing.T) {
	tris := Circle{X: 3, Y: 4, Radius: 0.5}.Triangles(Color{A: 1})

	require.Len(t, tris.Vertices, circleResolution)
	// A fan over n vertices has n-2 triangles.
	assert.Len(t, tris.Indexes, 3*(circleResolution-2))
	assert.InDelta(t, 3.5, tris.Vertices[0].X, 1e-6)
	assert.InDelta(t, 4, tris.Vertices[0].Y, 1e-6)
}

func TestPathTriangles(t *testing.T) {
	p := Path{
		XYs:       []Pt{{0, 0}, {1, 0}, {1, 1}},
		Thickness: 0.1,
	}
	tris := p.Triangles(Color{A: 1})

	require.Len(t, tris.Vertices, 6)
	assert.Len(t, tris.Indexes, 12)

	// Endpoint vertices straddle the first point perpendicular to the
	// first segment.
	assert.InDelta(t, 0.05, tris.Vertices[0].Y, 1e-6)
	assert.InDelta(t, -0.05, tris.Vertices[1].Y, 1e-6)
}

func TestClosedPathTriangles(t *testing.T) {
	p := Path{
		XYs:       []Pt{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Thickness: 0.05,
		Closed:    true,
	}
	tris := p.Triangles(Color{A: 1})

	require.Len(t, tris.Vertices, 8)
	// One quad (two triangles) per side, including the closing one.
	assert.Len(t, tris.Indexes, 24)
}

func TestBezier3(t *testing.T) {
	p := Bezier3([4]Pt{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, 0, 0.05)

	require.Len(t, p.XYs, bezierResolution+1)
	assert.Equal(t, Pt{0, 0}, p.StartPosition())
	assert.Equal(t, Pt{1, 0}, p.EndPosition())

	// Starts off heading toward the first control point and ends heading
	// away from the last one.
	d := p.StartDirection()
	assert.InDelta(t, 0, d.X, 1e-3)
	assert.InDelta(t, 1, d.Y, 1e-3)
	e := p.EndDirection()
	assert.InDelta(t, 0, e.X, 1e-3)
	assert.InDelta(t, -1, e.Y, 1e-3)
	assert.Greater(t, p.Len(), float32(1.0))
}

func TestTrianglesAppendRebasesIndexes(t *testing.T) {
	a := Rectangle{MaxX: 1, MaxY: 1}.Triangles(Color{})
	b := Rectangle{MaxX: 1, MaxY: 1}.Triangles(Color{})

	a.Append(b)
	require.Len(t, a.Vertices, 8)
	assert.Equal(t, uint16(4), a.Indexes[6])
}
