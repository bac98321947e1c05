package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"gadgets/widget"
)

const (
	toolbarH    = 28
	toolButtonW = 64
	paletteCell = 56
	paletteCols = 2
)

type toolButton struct {
	widget.Button
	// A mode button switches modes; an action button runs instead.
	mode   Mode
	action func(*App)
}

var toolDefs = []struct {
	label, tooltip string
	mode           Mode
	action         func(*App)
}{
	{label: "Select", tooltip: "Select and move gadgets", mode: ModeSelect},
	{label: "Paint", tooltip: "Paint the armed gadget, blank erases", mode: ModeTilePaint},
	{label: "Agent", tooltip: "Place the walker on an edge", mode: ModeAgentPlace},
	{label: "Play", tooltip: "Walk the agent with WASD or arrows", mode: ModePlay},
	{label: "Pan", tooltip: "Drag to pan (or right drag anywhere)", mode: ModePan},
	{label: "Zoom", tooltip: "Drag to zoom (or use the wheel)", mode: ModeZoom},
	{label: "Cut", tooltip: "Cut the selection (Ctrl+X)", action: (*App).cutSelected},
	{label: "Copy", tooltip: "Copy the selection (Ctrl+C)", action: (*App).copySelected},
	{label: "Paste", tooltip: "Stamp the clipboard (Ctrl+V)", mode: ModeGadgetPaste},
	{label: "Undo", tooltip: "Undo (Ctrl+Z)", action: (*App).undo},
	{label: "Redo", tooltip: "Redo (Ctrl+Y)", action: (*App).redo},
	{label: "Save", tooltip: "Save the share string (Ctrl+S)", action: (*App).save},
}

// buildUI lays the toolbar and palette out for the current screen size.
// Cheap enough to run every frame, which keeps resizes honest.
func (a *App) buildUI() ([]*toolButton, widget.SelectionGrid) {
	buttons := make([]*toolButton, 0, len(toolDefs))
	for i, d := range toolDefs {
		b := &toolButton{mode: d.mode, action: d.action}
		b.Button = widget.Button{
			X:       i * toolButtonW,
			Y:       0,
			W:       toolButtonW,
			H:       toolbarH,
			Label:   d.label,
			Tooltip: d.tooltip,
		}
		b.Active = d.mode != ModeNone && a.mode == d.mode
		switch d.label {
		case "Play":
			b.Disabled = a.agent == nil
		case "Cut", "Copy":
			b.Disabled = len(a.selection) == 0
		case "Paste":
			b.Disabled = a.clipboard == nil
		case "Undo":
			b.Disabled = !a.stack().CanUndo()
		case "Redo":
			b.Disabled = !a.stack().CanRedo()
		}
		buttons = append(buttons, b)
	}

	palette := widget.SelectionGrid{
		X:        0,
		Y:        toolbarH + 8,
		Cell:     paletteCell,
		Cols:     paletteCols,
		N:        len(a.presets),
		Selected: -1,
	}
	for i, p := range a.presets {
		if a.tile != nil && a.tile.Name() == p.Name() {
			palette.Selected = i
		}
	}
	return buttons, palette
}

// updateUI runs the toolbar and palette, reporting whether the cursor is
// over them so world input stays untouched underneath the chrome.
func (a *App) updateUI() bool {
	buttons, palette := a.buildUI()

	for _, b := range buttons {
		if !b.Update() {
			continue
		}
		if b.action != nil {
			b.action(a)
		} else {
			a.setMode(b.mode)
		}
		return true
	}

	if i, ok := palette.Update(); ok {
		a.tile = a.presets[i].Clone()
		a.setMode(ModeTilePaint)
		return true
	}

	sx, sy := ebiten.CursorPosition()
	if sy < toolbarH {
		return true
	}
	return palette.Contains(sx, sy)
}

func (a *App) drawUI(screen *ebiten.Image) {
	buttons, palette := a.buildUI()

	palette.Draw(screen)
	for i, p := range a.presets {
		x, y, w, h := palette.CellRect(i)
		size := p.Size()
		span := float32(size.W)
		if size.H > size.W {
			span = float32(size.H)
		}
		scale := float64(w-12) / float64(span)

		mesh := a.meshes.Mesh(p)
		geo := Mx{}
		geo.Translate(-float64(size.W)/2, -float64(size.H)/2)
		geo.Scale(scale, -scale)
		geo.Translate(float64(x+w/2), float64(y+h/2))
		drawTriangles(screen, mesh, geo, a.flatShader, nil)
	}

	for _, b := range buttons {
		b.Draw(screen)
	}
	for _, b := range buttons {
		b.DrawTooltip(screen)
	}

	ebitenutil.DebugPrintAt(screen, a.mode.String(), 8, a.c.sh-20)
}
