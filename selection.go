package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"gadgets/gadget"
)

// Select mode: click a selected item and drag to move it, or drag on
// anything else to sweep out a replacement selection rectangle.
func (a *App) updateSelect() {
	if MouseClicked(ebiten.MouseButtonLeft) {
		cell := a.cursorCell()
		if it, ok := a.grid.Get(cell); ok {
			if _, sel := a.selection[it.XY]; sel {
				a.beginMove(cell)
				return
			}
		}
		wx, wy := a.c.Cursor()
		a.selStart = &[2]float64{wx, wy}
		return
	}

	if a.selStart == nil {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}

	// Released: replace the selection with the swept items.
	wx, wy := a.c.Cursor()
	minX := math.Min(a.selStart[0], wx)
	maxX := math.Max(a.selStart[0], wx)
	minY := math.Min(a.selStart[1], wy)
	maxY := math.Max(a.selStart[1], wy)
	a.selStart = nil

	a.clearSelection()
	for _, it := range a.grid.InBounds(minX, maxX, minY, maxY) {
		a.selection[it.XY] = struct{}{}
	}
}

// beginMove lifts the selection off the board and switches to move mode.
func (a *App) beginMove(grab gadget.XY) {
	items := a.selectedItems()
	if len(items) == 0 {
		return
	}
	a.moving = a.moving[:0]
	for _, it := range items {
		a.moving = append(a.moving, movedItem{g: it.Gadget, pos: it.XY, size: it.Size})
	}
	for _, m := range a.moving {
		a.grid.Remove(m.pos)
	}
	a.grabCell = grab
	a.setMode(ModeGadgetMove)
}

// moveDelta is how far the drag has carried the lifted items, in cells.
func (a *App) moveDelta() gadget.XY {
	return a.cursorCell().Sub(a.grabCell)
}

func (a *App) updateMove() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	// Released: stamp the lifted items down and record the whole move.
	d := a.moveDelta()
	a.clearSelection()
	for _, m := range a.moving {
		a.stack().Push(removeAction{g: m.g, pos: m.pos, size: m.size})
	}
	for _, m := range a.moving {
		pos := m.pos.Add(d)
		a.addGadget(m.g, pos)
		a.selection[pos] = struct{}{}
	}
	a.stack().Batch()
	a.moving = a.moving[:0]
	a.mode = ModeSelect
}

// cancelMove puts lifted items back where they came from, with no
// history.
func (a *App) cancelMove() {
	for _, m := range a.moving {
		a.grid.Insert(m.g, m.pos, m.size)
	}
	a.moving = a.moving[:0]
}

// Paste mode: the clipboard hovers under the cursor; click stamps a copy.
// Escape leaves the mode.
func (a *App) updatePaste() {
	if a.clipboard == nil {
		a.setMode(ModeSelect)
		return
	}
	if MouseClicked(ebiten.MouseButtonLeft) {
		a.pasteAt(a.cursorCell())
	}
}
