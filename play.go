package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gadgets/gadget"
)

// Play mode: each key press walks the agent one traversal. Every step
// that does anything lands on the play undo stack as one batch.
func (a *App) updatePlay() {
	if a.agent == nil {
		a.setMode(ModeNone)
		return
	}

	input, ok := playInput()
	if !ok {
		return
	}
	a.playStep(input)
}

// playStep walks the agent one traversal and records it.
func (a *App) playStep(input gadget.XY) {
	before := agentAction{pos: a.agent.DoubledPosition(), dir: a.agent.Direction()}
	moved, change := a.agent.Advance(a.grid, input)
	if !moved {
		return
	}
	a.stack().Push(before)
	if change != nil {
		a.stack().Push(stateAction{pos: change.Pos, old: change.Old})
	}
	a.stack().Batch()
}

func playInput() (gadget.XY, bool) {
	switch {
	case Clicked(ebiten.KeyW), Clicked(ebiten.KeyArrowUp):
		return gadget.XY{X: 0, Y: 1}, true
	case Clicked(ebiten.KeyS), Clicked(ebiten.KeyArrowDown):
		return gadget.XY{X: 0, Y: -1}, true
	case Clicked(ebiten.KeyA), Clicked(ebiten.KeyArrowLeft):
		return gadget.XY{X: -1, Y: 0}, true
	case Clicked(ebiten.KeyD), Clicked(ebiten.KeyArrowRight):
		return gadget.XY{X: 1, Y: 0}, true
	}
	return gadget.XY{}, false
}
