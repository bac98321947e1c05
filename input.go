package main

import (
	"github.com/ByteArena/box2d"
	"github.com/hajimehoshi/ebiten/v2"
)

// Global, single threaded maps for easier input consumption
var (
	kdown  = make(map[ebiten.Key]int)
	mdown  = make(map[ebiten.MouseButton]int)
	mdrag  = make(map[ebiten.MouseButton]box2d.B2Vec2)
	iframe = 1
)

func InputsUpdate() {
	iframe++
	for k := range kdown {
		if !ebiten.IsKeyPressed(k) {
			delete(kdown, k)
		}
	}
	for m := range mdown {
		if !ebiten.IsMouseButtonPressed(m) {
			delete(mdown, m)
		}
	}
	for m := range mdrag {
		if !ebiten.IsMouseButtonPressed(m) {
			delete(mdrag, m)
		}
	}
}

// Returns true if a given k has just started to be pressed
func Clicked(k ebiten.Key) bool {
	if !ebiten.IsKeyPressed(k) {
		return false
	}
	f, ok := kdown[k]
	if f == iframe {
		return true
	}
	if ok {
		return false
	}
	kdown[k] = iframe
	return true
}

// Returns true if a given button has just started to be pressed
func MouseClicked(m ebiten.MouseButton) bool {
	if !ebiten.IsMouseButtonPressed(m) {
		return false
	}
	f, om := mdown[m]
	if f == iframe {
		return true
	}
	if om {
		return false
	}
	mdown[m] = iframe
	return true
}

var zeroDrag box2d.B2Vec2

// Returns the cursor's motion in screen pixels since the last frame while
// the given button is held, or the zero vector otherwise.
func MouseDrag(m ebiten.MouseButton) box2d.B2Vec2 {
	if !ebiten.IsMouseButtonPressed(m) {
		return box2d.B2Vec2{}
	}
	sx, sy := ebiten.CursorPosition()
	cur := box2d.B2Vec2{X: float64(sx), Y: float64(sy)}
	prev, ok := mdrag[m]
	mdrag[m] = cur
	if !ok {
		return box2d.B2Vec2{}
	}
	return box2d.B2Vec2{X: cur.X - prev.X, Y: cur.Y - prev.Y}
}

// Ctrl also accepts Meta so shortcuts work on macs.
func CtrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}
