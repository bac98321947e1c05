package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadgets/geom"
)

func countColor(ts geom.Triangles, c geom.Color) int {
	n := 0
	for _, v := range ts.Vertices {
		if v.Color == c {
			n++
		}
	}
	return n
}

func TestNopeMeshIsJustTheBody(t *testing.T) {
	mesh := BuildGadgetMesh(preset(t, "Nope"))
	assert.Equal(t, 4, len(mesh.Vertices))
	assert.Equal(t, countColor(mesh, bodyColor), len(mesh.Vertices))
}

func TestMeshPortCircles(t *testing.T) {
	perCircle := len(geom.Circle{Radius: portRadius}.Triangles(portColor).Vertices)

	straight := BuildGadgetMesh(preset(t, "Straight"))
	assert.Equal(t, 2*perCircle, countColor(straight, portColor))

	door := BuildGadgetMesh(preset(t, "Door"))
	assert.Equal(t, 6*perCircle, countColor(door, portColor))
}

func TestMeshOutlineOnlyForStatefulGadgets(t *testing.T) {
	straight := BuildGadgetMesh(preset(t, "Straight"))
	assert.Zero(t, countColor(straight, outlineColor))

	toggle := BuildGadgetMesh(preset(t, "Toggle"))
	assert.NotZero(t, countColor(toggle, outlineColor))
}

func TestMeshOneWayGetsArrowhead(t *testing.T) {
	// Straight is two way: one curve, no arrowheads. Diode is one way:
	// the marker adds path-colored vertices.
	straight := BuildGadgetMesh(preset(t, "Straight"))
	diode := BuildGadgetMesh(preset(t, "Diode"))
	assert.Greater(t, countColor(diode, pathColor), countColor(straight, pathColor))
}

func TestMeshCacheInvalidation(t *testing.T) {
	c := newMeshCache()
	dc := preset(t, "Directed crumbler")

	m1 := c.Mesh(dc)
	assert.Same(t, m1, c.Mesh(dc), "unchanged gadget reuses the mesh")

	paths := countColor(*m1, pathColor)
	require.NotZero(t, paths)

	// Crumbled state has no traversals left to draw.
	dc.CycleState()
	m2 := c.Mesh(dc)
	assert.Zero(t, countColor(*m2, pathColor))
}
