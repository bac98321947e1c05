package main

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"gadgets/gadget"
	"gadgets/geom"
)

// Editing modes. Exactly one is active at a time; switching modes keeps or
// clears in-progress state per mode (see setMode).
type Mode int

const (
	ModeNone Mode = iota
	ModeTilePaint
	ModeAgentPlace
	ModePlay
	ModeSelect
	ModePan
	ModeZoom
	ModeGadgetMove
	ModeGadgetPaste
)

func (m Mode) String() string {
	switch m {
	case ModeTilePaint:
		return "Paint"
	case ModeAgentPlace:
		return "Agent"
	case ModePlay:
		return "Play"
	case ModeSelect:
		return "Select"
	case ModePan:
		return "Pan"
	case ModeZoom:
		return "Zoom"
	case ModeGadgetMove:
		return "Move"
	case ModeGadgetPaste:
		return "Paste"
	default:
		return "None"
	}
}

// An item lifted off the board mid move.
type movedItem struct {
	g    *gadget.Gadget
	pos  gadget.XY
	size gadget.WH
}

type App struct {
	settings Settings
	c        Camera

	grid  *gadget.Grid
	agent *gadget.Agent

	mode Mode

	// Palette of placeable gadgets; tile is the armed one.
	presets []*gadget.Gadget
	tile    *gadget.Gadget

	// Anchor cells of selected items.
	selection map[gadget.XY]struct{}
	// World point where a selection rectangle drag started, if dragging.
	selStart *[2]float64
	// Items lifted off the board during a move drag, and the cell the
	// drag started on.
	moving   []movedItem
	grabCell gadget.XY
	// Clipboard grid, centered on the origin.
	clipboard *gadget.Grid

	// Edit history, then play history. stackIdx picks the live one.
	stacks   [2]UndoStack
	stackIdx int

	meshes    *meshCache
	agentMesh geom.Triangles
	gridMesh  geom.Triangles

	flatShader *ebiten.Shader
	selShader  *ebiten.Shader

	// Evaluated ticks, for the selection pulse.
	time int

	// Autosave bookkeeping.
	sinceSave int
	lastSaved string
}

// Frames between autosave checks.
const autosaveEvery = 600

func NewApp(settings Settings) (*App, error) {
	flat, err := Shader("shaders/flat_shader.go")
	if err != nil {
		return nil, fmt.Errorf("flat shader: %w", err)
	}
	sel, err := Shader("shaders/selection_shader.go")
	if err != nil {
		return nil, fmt.Errorf("selection shader: %w", err)
	}

	a := &App{
		settings:   settings,
		grid:       gadget.NewGrid(),
		presets:    gadget.Presets(),
		selection:  map[gadget.XY]struct{}{},
		meshes:     newMeshCache(),
		agentMesh:  BuildAgentMesh(),
		flatShader: flat,
		selShader:  sel,
	}
	a.c = Camera{hw: 8, hh: 8, x: 0, y: 0}

	enc, err := loadShare(settings)
	if err != nil {
		log.Println("load share:", err)
	} else if enc != "" {
		grid, err := gadget.DecodeGrid(enc)
		if err != nil {
			log.Println("decode share:", err)
		} else {
			a.grid = grid
			a.lastSaved = enc
		}
	}
	return a, nil
}

func (a *App) stack() *UndoStack {
	return &a.stacks[a.stackIdx]
}

// setMode switches modes, folding or clearing per-mode state. Play
// history collapses onto the edit stack when play ends; the agent only
// survives hops between placing and playing; the selection survives
// camera modes.
func (a *App) setMode(m Mode) {
	if m == a.mode {
		return
	}
	if m == ModePlay && a.agent == nil {
		return
	}
	if m == ModeGadgetPaste && a.clipboard == nil {
		return
	}

	if a.mode == ModeGadgetMove {
		a.cancelMove()
	}
	a.selStart = nil
	a.stack().Batch()

	// Play history lives on its own stack for as long as the user hops
	// between placing and playing. Leaving that pair folds it into the
	// edit history as a single step.
	toPlayPair := m == ModePlay || m == ModeAgentPlace
	if a.stackIdx == 1 && !toPlayPair {
		a.stacks[0].AppendAsBatch(&a.stacks[1])
		a.stackIdx = 0
	}
	if m == ModePlay && a.stackIdx == 0 {
		a.stacks[1].Clear()
		a.stackIdx = 1
	}
	if m != ModePlay && m != ModeAgentPlace {
		a.agent = nil
	}

	switch m {
	case ModeSelect, ModePan, ModeZoom, ModeGadgetMove:
		// selection survives
	default:
		a.clearSelection()
	}

	a.mode = m
}

func (a *App) clearSelection() {
	for k := range a.selection {
		delete(a.selection, k)
	}
}

func (a *App) cursorCell() gadget.XY {
	wx, wy := a.c.Cursor()
	return gadget.XY{X: int(math.Floor(wx)), Y: int(math.Floor(wy))}
}

// addGadget inserts and records the edit, including any overlapped
// victims, on the live stack.
func (a *App) addGadget(g *gadget.Gadget, pos gadget.XY) {
	removed := a.grid.Insert(g, pos, g.Size())
	for _, it := range removed {
		a.stack().Push(removeAction{g: it.Gadget, pos: it.XY, size: it.Size})
		a.dropSelection(it.XY)
		a.meshes.Drop(it.Gadget)
	}
	a.stack().Push(insertAction{pos: pos})
}

// removeAt removes whatever covers the cell and records the edit.
func (a *App) removeAt(pos gadget.XY) bool {
	it, ok := a.grid.Remove(pos)
	if !ok {
		return false
	}
	a.stack().Push(removeAction{g: it.Gadget, pos: it.XY, size: it.Size})
	a.dropSelection(it.XY)
	a.meshes.Drop(it.Gadget)
	return true
}

func (a *App) dropSelection(anchor gadget.XY) {
	delete(a.selection, anchor)
}

func (a *App) selectedItems() []*gadget.Item {
	anchors := make([]gadget.XY, 0, len(a.selection))
	for pos := range a.selection {
		anchors = append(anchors, pos)
	}
	sort.Slice(anchors, func(i, j int) bool {
		if anchors[i].Y != anchors[j].Y {
			return anchors[i].Y < anchors[j].Y
		}
		return anchors[i].X < anchors[j].X
	})
	items := make([]*gadget.Item, 0, len(anchors))
	for _, pos := range anchors {
		if it, ok := a.grid.Get(pos); ok {
			items = append(items, it)
		}
	}
	return items
}

func (a *App) removeSelected() {
	for _, it := range a.selectedItems() {
		a.removeAt(it.XY)
	}
	a.stack().Batch()
}

// copySelected replaces the clipboard with clones of the selection,
// centered on the origin.
func (a *App) copySelected() {
	items := a.selectedItems()
	if len(items) == 0 {
		return
	}
	buf := gadget.NewGrid()
	for _, it := range items {
		buf.Insert(it.Gadget.Clone(), it.XY, it.Size)
	}
	a.clipboard = buf.Center()
}

func (a *App) cutSelected() {
	a.copySelected()
	a.removeSelected()
}

// pasteAt stamps the clipboard with its origin at the given cell.
func (a *App) pasteAt(cell gadget.XY) {
	if a.clipboard == nil {
		return
	}
	for _, it := range a.clipboard.Items() {
		a.addGadget(it.Gadget.Clone(), it.XY.Add(cell))
	}
	a.stack().Batch()
}

// transformSelection lifts the selection, runs a whole-grid transform
// normalized around the selection's bounding box, and stamps the result
// back as one undoable edit.
func (a *App) transformSelection(f func(*gadget.Grid) *gadget.Grid) {
	items := a.selectedItems()
	if len(items) == 0 {
		return
	}

	minC := items[0].XY
	tmp := gadget.NewGrid()
	for _, it := range items {
		if it.XY.X < minC.X {
			minC.X = it.XY.X
		}
		if it.XY.Y < minC.Y {
			minC.Y = it.XY.Y
		}
		tmp.Insert(it.Gadget.Clone(), it.XY, it.Size)
	}

	for _, it := range items {
		a.removeAt(it.XY)
	}

	// Normalize to the origin, transform, then put the result back near
	// where the selection was.
	tmp = f(tmp.Translate(minC.Neg())).Translate(minC)
	a.clearSelection()
	for _, it := range tmp.Items() {
		a.addGadget(it.Gadget, it.XY)
		a.selection[it.XY] = struct{}{}
	}
	a.stack().Batch()
}

// cycleSelection advances the state of every selected gadget.
func (a *App) cycleSelection() {
	for _, it := range a.selectedItems() {
		a.stack().Push(stateAction{pos: it.XY, old: it.Gadget.State()})
		it.Gadget.CycleState()
	}
	a.stack().Batch()
}

// rotate/flip apply to whatever is active: the clipboard in paste mode,
// the selection when there is one, else the armed tile.
func (a *App) rotateActive(turns int) {
	switch {
	case a.mode == ModeGadgetPaste && a.clipboard != nil:
		a.clipboard = a.clipboard.Rotate(turns).Center()
	case len(a.selection) > 0:
		a.transformSelection(func(g *gadget.Grid) *gadget.Grid { return g.Rotate(turns) })
	case a.tile != nil:
		a.tile.Rotate(turns)
	}
}

func (a *App) flipActiveX() {
	switch {
	case a.mode == ModeGadgetPaste && a.clipboard != nil:
		a.clipboard = a.clipboard.FlipX().Center()
	case len(a.selection) > 0:
		a.transformSelection((*gadget.Grid).FlipX)
	case a.tile != nil:
		a.tile.FlipX()
	}
}

func (a *App) flipActiveY() {
	switch {
	case a.mode == ModeGadgetPaste && a.clipboard != nil:
		a.clipboard = a.clipboard.FlipY().Center()
	case len(a.selection) > 0:
		a.transformSelection((*gadget.Grid).FlipY)
	case a.tile != nil:
		a.tile.FlipY()
	}
}

func (a *App) cycleActive() {
	if len(a.selection) > 0 {
		a.cycleSelection()
	} else if a.tile != nil {
		a.tile.CycleState()
	}
}

func (a *App) selectAll() {
	a.setMode(ModeSelect)
	a.clearSelection()
	for _, it := range a.grid.Items() {
		a.selection[it.XY] = struct{}{}
	}
}

func (a *App) save() {
	enc := gadget.EncodeGrid(a.grid)
	if err := saveShare(a.settings, enc); err != nil {
		log.Println("save:", err)
		return
	}
	a.lastSaved = enc
}

func (a *App) maybeAutosave() {
	a.sinceSave++
	if a.sinceSave < autosaveEvery {
		return
	}
	a.sinceSave = 0
	if enc := gadget.EncodeGrid(a.grid); enc != a.lastSaved {
		a.save()
	}
}

// Undo can delete gadgets out from under the selection, so the anchors
// go first.
func (a *App) undo() {
	a.clearSelection()
	a.stack().Undo(a)
}

func (a *App) redo() {
	a.clearSelection()
	a.stack().Redo(a)
}

func (a *App) handleKeys() {
	if CtrlPressed() {
		switch {
		case Clicked(ebiten.KeyZ):
			a.undo()
		case Clicked(ebiten.KeyY):
			a.redo()
		case Clicked(ebiten.KeyX):
			a.cutSelected()
		case Clicked(ebiten.KeyC):
			a.copySelected()
		case Clicked(ebiten.KeyV):
			a.setMode(ModeGadgetPaste)
		case Clicked(ebiten.KeyS):
			a.save()
		case Clicked(ebiten.KeyA):
			a.selectAll()
		}
		return
	}

	switch {
	case Clicked(ebiten.KeyR):
		a.rotateActive(1)
	case Clicked(ebiten.KeyT):
		a.rotateActive(-1)
	case Clicked(ebiten.KeyX):
		a.flipActiveX()
	case Clicked(ebiten.KeyY):
		a.flipActiveY()
	case Clicked(ebiten.KeyC):
		a.cycleActive()
	case Clicked(ebiten.KeyDelete), Clicked(ebiten.KeyBackspace):
		a.removeSelected()
	case Clicked(ebiten.KeyEscape):
		switch a.mode {
		case ModeGadgetPaste, ModeGadgetMove:
			a.setMode(ModeSelect)
		default:
			a.clearSelection()
		}
	}
}

func (a *App) Update() error {
	a.time++
	InputsUpdate()

	uiBusy := a.updateUI()
	a.handleKeys()

	if !uiBusy {
		switch a.mode {
		case ModeTilePaint:
			a.updateTilePaint()
		case ModeAgentPlace:
			a.updateAgentPlace()
		case ModePlay:
			a.updatePlay()
		case ModeSelect:
			a.updateSelect()
		case ModeGadgetMove:
			a.updateMove()
		case ModeGadgetPaste:
			a.updatePaste()
		case ModePan:
			if d := MouseDrag(ebiten.MouseButtonLeft); d != zeroDrag {
				wd := a.c.DragWorld(d)
				a.c.Pan(-wd.X, -wd.Y)
			}
		case ModeZoom:
			if d := MouseDrag(ebiten.MouseButtonLeft); d != zeroDrag {
				a.c.Zoom(math.Pow(1.01, d.Y), float64(a.c.sw)/2, float64(a.c.sh)/2)
			}
		}
	}

	a.updateCameraControls()
	a.maybeAutosave()
	return nil
}

// Camera controls that work in every mode: right drag pans, wheel zooms
// about the cursor.
func (a *App) updateCameraControls() {
	if d := MouseDrag(ebiten.MouseButtonRight); d != zeroDrag {
		wd := a.c.DragWorld(d)
		a.c.Pan(-wd.X, -wd.Y)
	}
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		sx, sy := ebiten.CursorPosition()
		a.c.Zoom(math.Pow(0.96, yoff), float64(sx), float64(sy))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.c.Layout(outsideWidth, outsideHeight)
}
