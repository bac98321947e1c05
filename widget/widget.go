// Package widget provides the few immediate mode controls the editor
// needs: toolbar buttons and a grid of selectable cells.
package widget

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonFill     = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}
	buttonHover    = color.RGBA{R: 0x45, G: 0x45, B: 0x50, A: 0xff}
	buttonActive   = color.RGBA{R: 0x2a, G: 0x52, B: 0x7a, A: 0xff}
	buttonDisabled = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	tooltipFill    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xe0}
	cellFill       = color.RGBA{R: 0x26, G: 0x26, B: 0x2e, A: 0xff}
	cellSelected   = color.RGBA{R: 0x2a, G: 0x52, B: 0x7a, A: 0xff}
)

// Button is a clickable screen-space rectangle with a short label and a
// hover tooltip.
type Button struct {
	X, Y, W, H int
	Label      string
	Tooltip    string

	// Drawn highlighted, for the button of the current mode.
	Active bool
	// Ignores clicks and draws dimmed.
	Disabled bool
}

func (b *Button) Hovered() bool {
	x, y := ebiten.CursorPosition()
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Update reports whether the button was clicked this frame.
func (b *Button) Update() bool {
	if b.Disabled {
		return false
	}
	return b.Hovered() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (b *Button) Draw(dst *ebiten.Image) {
	fill := buttonFill
	switch {
	case b.Disabled:
		fill = buttonDisabled
	case b.Active:
		fill = buttonActive
	case b.Hovered():
		fill = buttonHover
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, color.Black, false)
	ebitenutil.DebugPrintAt(dst, b.Label, b.X+4, b.Y+(b.H-16)/2)
}

// DrawTooltip renders the tooltip near the cursor if the button is
// hovered. Separate from Draw so tooltips layer over every button.
func (b *Button) DrawTooltip(dst *ebiten.Image) {
	if b.Tooltip == "" || !b.Hovered() {
		return
	}
	x, y := ebiten.CursorPosition()
	w := 8*len(b.Tooltip) + 8
	vector.DrawFilledRect(dst, float32(x+12), float32(y+12), float32(w), 20, tooltipFill, false)
	ebitenutil.DebugPrintAt(dst, b.Tooltip, x+16, y+14)
}

// SelectionGrid is a paged grid of square cells, one selectable at a time.
// Cell contents are drawn by the caller over the cell rectangles.
type SelectionGrid struct {
	X, Y int
	// Side of each square cell in pixels.
	Cell int
	Cols int
	// Number of cells.
	N int
	// Index of the selected cell, or -1.
	Selected int
}

// CellRect returns the screen rectangle of cell i.
func (g *SelectionGrid) CellRect(i int) (x, y, w, h int) {
	col := i % g.Cols
	row := i / g.Cols
	return g.X + col*g.Cell, g.Y + row*g.Cell, g.Cell, g.Cell
}

// Contains reports whether the point is inside the grid's full extent.
func (g *SelectionGrid) Contains(x, y int) bool {
	rows := (g.N + g.Cols - 1) / g.Cols
	cols := g.Cols
	if g.N < cols {
		cols = g.N
	}
	return x >= g.X && x < g.X+cols*g.Cell && y >= g.Y && y < g.Y+rows*g.Cell
}

// Update reports a cell click this frame, if any.
func (g *SelectionGrid) Update() (picked int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	x, y := ebiten.CursorPosition()
	for i := 0; i < g.N; i++ {
		cx, cy, cw, ch := g.CellRect(i)
		if x >= cx && x < cx+cw && y >= cy && y < cy+ch {
			return i, true
		}
	}
	return 0, false
}

func (g *SelectionGrid) Draw(dst *ebiten.Image) {
	for i := 0; i < g.N; i++ {
		x, y, w, h := g.CellRect(i)
		fill := cellFill
		if i == g.Selected {
			fill = cellSelected
		}
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fill, false)
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, color.Black, false)
	}
}
