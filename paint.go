package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gadgets/gadget"
)

// Tile painting: hold the left button and sweep. Painting the blank tile
// erases instead. The whole sweep batches into one undo step on release.
func (a *App) updateTilePaint() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.stack().Batch()
		return
	}
	if a.tile == nil {
		return
	}
	a.paintCell(a.cursorCell())
}

// paintCell stamps the armed tile on a cell, or erases the cell when the
// blank tile is armed.
func (a *App) paintCell(cell gadget.XY) {
	if a.tile.IsNope() {
		a.removeAt(cell)
		return
	}

	// Sweeping across a tile already painted identically is a no-op, so
	// dragging does not churn the grid.
	if it, ok := a.grid.Get(cell); ok && it.XY == cell && sameTile(it.Gadget, a.tile) {
		return
	}
	a.addGadget(a.tile.Clone(), cell)
}

// sameTile reports whether the placed gadget is an untouched copy of the
// armed tile.
func sameTile(placed, armed *gadget.Gadget) bool {
	if placed.Def() != armed.Def() || placed.Size() != armed.Size() || placed.State() != armed.State() {
		return false
	}
	for slot := 0; slot < 2*(placed.Size().W+placed.Size().H); slot++ {
		if placed.Port(slot) != armed.Port(slot) {
			return false
		}
	}
	return true
}

// Agent placement: click or drag to stand the walker on the nearest edge
// midpoint.
func (a *App) updateAgentPlace() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	wx, wy := a.c.Cursor()
	if a.agent == nil {
		a.agent = gadget.NewAgent(wx, wy, gadget.XY{X: 0, Y: 1})
		return
	}
	a.agent.SetPosition(wx, wy)
}
