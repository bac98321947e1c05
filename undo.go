package main

import (
	"gadgets/gadget"
)

// An UndoAction reverses one edit when applied. Applying returns the
// inverse action for the redo stack.
type UndoAction interface {
	invert(a *App) UndoAction
}

// A gadget was inserted. Undo removes it.
type insertAction struct {
	pos gadget.XY
}

func (i insertAction) invert(a *App) UndoAction {
	it, ok := a.grid.Remove(i.pos)
	if !ok {
		return batchAction{}
	}
	return removeAction{g: it.Gadget, pos: it.XY, size: it.Size}
}

// A gadget was removed. Undo puts it back.
type removeAction struct {
	g    *gadget.Gadget
	pos  gadget.XY
	size gadget.WH
}

func (r removeAction) invert(a *App) UndoAction {
	a.grid.Insert(r.g, r.pos, r.size)
	return insertAction{pos: r.pos}
}

// The agent moved. Undo puts it back where it was, facing as it faced.
type agentAction struct {
	pos gadget.XY
	dir gadget.XY
}

func (m agentAction) invert(a *App) UndoAction {
	if a.agent == nil {
		return batchAction{}
	}
	inv := agentAction{pos: a.agent.DoubledPosition(), dir: a.agent.Direction()}
	a.agent.SetDoubledPosition(m.pos)
	if a.agent.Direction() != m.dir {
		a.agent.Flip()
	}
	return inv
}

// A gadget changed state. Undo restores the old state.
type stateAction struct {
	pos gadget.XY
	old gadget.State
}

func (s stateAction) invert(a *App) UndoAction {
	it, ok := a.grid.Get(s.pos)
	if !ok {
		return batchAction{}
	}
	inv := stateAction{pos: s.pos, old: it.Gadget.State()}
	it.Gadget.SetState(s.old)
	return inv
}

// Several actions that undo together.
type batchAction struct {
	actions []UndoAction
}

func (b batchAction) invert(a *App) UndoAction {
	inv := batchAction{actions: make([]UndoAction, 0, len(b.actions))}
	for i := len(b.actions) - 1; i >= 0; i-- {
		inv.actions = append(inv.actions, b.actions[i].invert(a))
	}
	return inv
}

// UndoStack holds history for one editing context. Pushed actions stay
// unbatched until Batch groups them, so one mouse gesture undoes at once.
type UndoStack struct {
	undo []UndoAction
	redo []UndoAction
	// Count of actions at the top of undo not yet grouped.
	unbatched int
}

func (s *UndoStack) Push(a UndoAction) {
	s.undo = append(s.undo, a)
	s.unbatched++
	s.redo = s.redo[:0]
}

// Batch groups every action pushed since the last batch into one.
func (s *UndoStack) Batch() {
	if s.unbatched > 1 {
		n := len(s.undo)
		b := batchAction{actions: append([]UndoAction(nil), s.undo[n-s.unbatched:]...)}
		s.undo = append(s.undo[:n-s.unbatched], b)
	}
	s.unbatched = 0
}

func (s *UndoStack) CanUndo() bool {
	return len(s.undo) > 0
}

func (s *UndoStack) CanRedo() bool {
	return len(s.redo) > 0
}

func (s *UndoStack) Undo(a *App) {
	s.Batch()
	if len(s.undo) == 0 {
		return
	}
	act := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, act.invert(a))
}

func (s *UndoStack) Redo(a *App) {
	if len(s.redo) == 0 {
		return
	}
	s.Batch()
	act := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, act.invert(a))
}

func (s *UndoStack) Clear() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
	s.unbatched = 0
}

// AppendAsBatch folds another stack's whole history onto this one as a
// single action. Agent motion is dropped since the agent leaves with play
// mode.
func (s *UndoStack) AppendAsBatch(other *UndoStack) {
	kept := make([]UndoAction, 0, len(other.undo))
	for _, a := range other.undo {
		if a = dropAgentMoves(a); a != nil {
			kept = append(kept, a)
		}
	}
	other.Clear()
	if len(kept) == 0 {
		return
	}
	if len(kept) == 1 {
		s.Push(kept[0])
	} else {
		s.Push(batchAction{actions: kept})
	}
	s.Batch()
}

func dropAgentMoves(a UndoAction) UndoAction {
	switch v := a.(type) {
	case agentAction:
		return nil
	case batchAction:
		kept := make([]UndoAction, 0, len(v.actions))
		for _, sub := range v.actions {
			if sub = dropAgentMoves(sub); sub != nil {
				kept = append(kept, sub)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return batchAction{actions: kept}
	default:
		return a
	}
}
