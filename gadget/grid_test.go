package gadget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridGetCoversFootprint(t *testing.T) {
	g := NewGrid()
	a := findPreset(t, "Straight").Clone()
	b := findPreset(t, "Door").Clone()

	g.Insert(a, XY{0, 0}, WH{1, 1})
	g.Insert(b, XY{1, 0}, WH{2, 1})

	it, ok := g.Get(XY{0, 0})
	require.True(t, ok)
	assert.Same(t, a, it.Gadget)

	it, ok = g.Get(XY{1, 0})
	require.True(t, ok)
	assert.Same(t, b, it.Gadget)

	it, ok = g.Get(XY{2, 0})
	require.True(t, ok)
	assert.Same(t, b, it.Gadget)

	_, ok = g.Get(XY{3, 0})
	assert.False(t, ok)
}

func TestGridInsertRemovesOverlaps(t *testing.T) {
	g := NewGrid()
	a := findPreset(t, "Door").Clone()
	b := findPreset(t, "Door").Clone()

	g.Insert(a, XY{0, 0}, WH{2, 1})
	removed := g.Insert(b, XY{1, 0}, WH{2, 1})

	require.Len(t, removed, 1)
	assert.Same(t, a, removed[0].Gadget)
	_, ok := g.Get(XY{0, 0})
	assert.False(t, ok, "the overlapped item is gone from all its cells")
	assert.Equal(t, 1, g.Len())
}

func TestGridRemove(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Door").Clone(), XY{-2, 3}, WH{2, 1})

	it, ok := g.Remove(XY{-1, 3})
	require.True(t, ok)
	assert.Equal(t, XY{-2, 3}, it.XY)
	assert.True(t, g.IsEmpty())

	_, ok = g.Remove(XY{-1, 3})
	assert.False(t, ok)
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Straight").Clone(), XY{0, 0}, WH{1, 1})
	g.Insert(findPreset(t, "Straight").Clone(), XY{5, 5}, WH{1, 1})

	assert.Len(t, g.InBounds(-1, 2, -1, 2), 1)
	assert.Len(t, g.InBounds(-1, 6, -1, 6), 2)
	assert.Empty(t, g.InBounds(2, 4, 2, 4))
}

func TestGridEmptyInBounds(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Straight").Clone(), XY{0, 0}, WH{1, 1})

	empty := g.EmptyInBounds(0, 1, 0, 1)
	assert.NotContains(t, empty, XY{0, 0})
	assert.Contains(t, empty, XY{1, 0})
	assert.Contains(t, empty, XY{1, 1})
}

func TestTouchingEdge(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Straight").Clone(), XY{0, 0}, WH{1, 1})

	// Standing below the gadget's bottom edge, facing up.
	it, slot, ok := g.TouchingEdge(XY{1, 0}, XY{0, 1})
	require.True(t, ok)
	assert.Equal(t, XY{0, 0}, it.XY)
	assert.Equal(t, 0, slot, "bottom edge is slot 0")

	// Standing above the top edge, facing down.
	it, slot, ok = g.TouchingEdge(XY{1, 2}, XY{0, -1})
	require.True(t, ok)
	assert.Equal(t, 2, slot, "top edge of a 1x1 is slot 2")

	// To the left, facing right.
	_, slot, ok = g.TouchingEdge(XY{0, 1}, XY{1, 0})
	require.True(t, ok)
	assert.Equal(t, 3, slot, "left edge of a 1x1 is slot 3")

	// To the right, facing left.
	_, slot, ok = g.TouchingEdge(XY{2, 1}, XY{-1, 0})
	require.True(t, ok)
	assert.Equal(t, 1, slot, "right edge of a 1x1 is slot 1")

	// Facing away from the gadget.
	_, _, ok = g.TouchingEdge(XY{1, 0}, XY{0, -1})
	assert.False(t, ok)

	// Not an edge midpoint.
	_, _, ok = g.TouchingEdge(XY{0, 0}, XY{0, 1})
	assert.False(t, ok)
}

func TestGridTranslateAndCenter(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Straight").Clone(), XY{4, 4}, WH{1, 1})

	moved := g.Translate(XY{-4, -4})
	_, ok := moved.Get(XY{0, 0})
	assert.True(t, ok)

	centered := g.Center()
	items := centered.Items()
	require.Len(t, items, 1)
	// The single cell lands adjacent to the origin.
	assert.LessOrEqual(t, abs(items[0].XY.X), 1)
	assert.LessOrEqual(t, abs(items[0].XY.Y), 1)
}

func TestGridRotate(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Door").Clone(), XY{0, 0}, WH{2, 1})

	r := g.Rotate(1)
	items := r.Items()
	require.Len(t, items, 1)
	assert.Equal(t, WH{1, 2}, items[0].Size)
	// (0,0)..(2,1) about (0.5,0.5) lands at (0,0)..(1,2).
	assert.Equal(t, XY{0, 0}, items[0].XY)

	// Four turns is the identity on positions and footprints.
	r4 := g.Rotate(4)
	assert.Equal(t, XY{0, 0}, r4.Items()[0].XY)
	assert.Equal(t, WH{2, 1}, r4.Items()[0].Size)
}

func TestGridFlip(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Straight").Clone(), XY{2, 0}, WH{1, 1})

	fx := g.FlipX()
	_, ok := fx.Get(XY{-2, 0})
	assert.True(t, ok)

	// Mirroring about y = 0.5 keeps a cell at y = 0 in place.
	fy := g.FlipY()
	_, ok = fy.Get(XY{2, 0})
	assert.True(t, ok)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
