package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"gadgets/geom"
)

var backgroundColor = color.RGBA{R: 0x16, G: 0x16, B: 0x1c, A: 0xff}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	toScreen := a.c.ToScreen()
	uniforms := map[string]any{
		"Time": float32(a.time) / 60,
	}

	a.drawGridLines(screen, toScreen)

	for _, it := range a.grid.Items() {
		mesh := a.meshes.Mesh(it.Gadget)
		geo := Mx{}
		geo.Translate(float64(it.XY.X), float64(it.XY.Y))
		geo.Concat(toScreen)

		shader := a.flatShader
		if _, ok := a.selection[it.XY]; ok {
			shader = a.selShader
		}
		drawTriangles(screen, mesh, geo, shader, uniforms)
	}

	// Items lifted mid move ride along under the cursor.
	if a.mode == ModeGadgetMove {
		d := a.moveDelta()
		for _, m := range a.moving {
			mesh := a.meshes.Mesh(m.g)
			geo := Mx{}
			geo.Translate(float64(m.pos.X+d.X), float64(m.pos.Y+d.Y))
			geo.Concat(toScreen)
			drawTriangles(screen, mesh, geo, a.selShader, uniforms)
		}
	}

	// Clipboard preview in paste mode.
	if a.mode == ModeGadgetPaste && a.clipboard != nil {
		cell := a.cursorCell()
		for _, it := range a.clipboard.Items() {
			mesh := a.meshes.Mesh(it.Gadget)
			geo := Mx{}
			geo.Translate(float64(it.XY.X+cell.X), float64(it.XY.Y+cell.Y))
			geo.Concat(toScreen)
			drawTriangles(screen, mesh, geo, a.selShader, uniforms)
		}
	}

	// Armed tile ghost in paint mode.
	if a.mode == ModeTilePaint && a.tile != nil && !a.tile.IsNope() {
		cell := a.cursorCell()
		mesh := a.meshes.Mesh(a.tile)
		geo := Mx{}
		geo.Translate(float64(cell.X), float64(cell.Y))
		geo.Concat(toScreen)
		drawTriangles(screen, mesh, geo, a.flatShader, uniforms)
	}

	// Selection rectangle while sweeping.
	if a.selStart != nil {
		wx, wy := a.c.Cursor()
		x0, y0 := a.selStart[0], a.selStart[1]
		drawline(screen, x0, y0, wx, y0, 2, toScreen, color.White)
		drawline(screen, wx, y0, wx, wy, 2, toScreen, color.White)
		drawline(screen, wx, wy, x0, wy, 2, toScreen, color.White)
		drawline(screen, x0, wy, x0, y0, 2, toScreen, color.White)
	}

	a.drawAgent(screen, toScreen)
	a.drawUI(screen)
}

// drawGridLines marks the empty cells of the visible board with thin
// corner-to-corner edge strips.
func (a *App) drawGridLines(screen *ebiten.Image, toScreen Mx) {
	minX := a.c.x - a.c.hw
	maxX := a.c.x + a.c.hw
	minY := a.c.y - a.c.hh
	maxY := a.c.y + a.c.hh

	a.gridMesh.Clear()
	for _, cell := range a.grid.EmptyInBounds(minX, maxX, minY, maxY) {
		x, y := float32(cell.X), float32(cell.Y)
		a.gridMesh.Append(geom.Rectangle{MinX: x, MaxX: x + 1, MinY: y, MaxY: y + 0.02}.Triangles(gridColor))
		a.gridMesh.Append(geom.Rectangle{MinX: x, MaxX: x + 0.02, MinY: y, MaxY: y + 1}.Triangles(gridColor))
	}
	drawTriangles(screen, &a.gridMesh, toScreen, a.flatShader, nil)
}

func (a *App) drawAgent(screen *ebiten.Image, toScreen Mx) {
	if a.agent == nil {
		return
	}
	x, y := a.agent.Position()
	dir := a.agent.Direction()

	geo := Mx{}
	// The mesh points along +Y; rotate to the facing. Rotation here is in
	// world coordinates, before the screen flip.
	switch {
	case dir.X == 1:
		geo.Rotate(-math.Pi / 2)
	case dir.X == -1:
		geo.Rotate(math.Pi / 2)
	case dir.Y == -1:
		geo.Rotate(math.Pi)
	}
	geo.Translate(x, y)
	geo.Concat(toScreen)
	drawTriangles(screen, &a.agentMesh, geo, a.flatShader, nil)
}
