package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellRect(t *testing.T) {
	g := SelectionGrid{X: 10, Y: 20, Cell: 48, Cols: 3, N: 7, Selected: -1}

	x, y, w, h := g.CellRect(0)
	assert.Equal(t, [4]int{10, 20, 48, 48}, [4]int{x, y, w, h})

	x, y, _, _ = g.CellRect(2)
	assert.Equal(t, [2]int{10 + 2*48, 20}, [2]int{x, y})

	// Fourth cell wraps to the second row.
	x, y, _, _ = g.CellRect(3)
	assert.Equal(t, [2]int{10, 20 + 48}, [2]int{x, y})

	x, y, _, _ = g.CellRect(6)
	assert.Equal(t, [2]int{10, 20 + 2*48}, [2]int{x, y})
}

func TestGridContains(t *testing.T) {
	g := SelectionGrid{X: 0, Y: 0, Cell: 10, Cols: 4, N: 6}

	assert.True(t, g.Contains(0, 0))
	assert.True(t, g.Contains(39, 19))
	assert.False(t, g.Contains(40, 0))
	assert.False(t, g.Contains(0, 20))
	assert.False(t, g.Contains(-1, 0))
}

func TestGridContainsSingleRow(t *testing.T) {
	// Fewer cells than columns narrows the extent.
	g := SelectionGrid{X: 0, Y: 0, Cell: 10, Cols: 4, N: 2}
	assert.True(t, g.Contains(19, 5))
	assert.False(t, g.Contains(20, 5))
}
