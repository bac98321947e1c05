package gadget

import "math"

// Agent walks around in a maze of gadgets. It stands on edge midpoints,
// so its position is stored doubled to keep it in integers.
type Agent struct {
	doubleXY XY
	// One of (1,0), (0,1), (-1,0), (0,-1).
	direction XY
}

// A state change committed by a traversal, for undo records.
type StateChange struct {
	Pos XY
	Old State
}

func NewAgent(x, y float64, direction XY) *Agent {
	a := &Agent{direction: direction}
	a.SetPosition(x, y)
	return a
}

// Position returns the agent's position in world units.
func (a *Agent) Position() (float64, float64) {
	return float64(a.doubleXY.X) / 2, float64(a.doubleXY.Y) / 2
}

func (a *Agent) DoubledPosition() XY {
	return a.doubleXY
}

func (a *Agent) Direction() XY {
	return a.direction
}

// SetPosition snaps the agent to the nearest edge midpoint and fixes the
// facing so it is perpendicular to the edge.
func (a *Agent) SetPosition(x, y float64) {
	rx := int(math.Round(x * 2))
	ry := int(math.Round(y * 2))

	if oddness(rx) == oddness(ry) {
		// Not on an edge; nudge the coordinate that costs least.
		cx := math.Abs(x*2 - nearestOdd(x*2))
		cy := math.Abs(y*2 - nearestOdd(y*2))
		if cx < cy {
			rx = int(nearestOdd(x * 2))
			ry = int(nearestEven(y * 2))
		} else {
			rx = int(nearestEven(x * 2))
			ry = int(nearestOdd(y * 2))
		}
	}

	a.doubleXY = XY{rx, ry}

	// On a horizontal edge the agent faces vertically, and vice versa.
	if oddness(a.doubleXY.X) == 1 {
		if a.direction.Y == 0 {
			a.direction = XY{0, 1}
		}
	} else {
		if a.direction.X == 0 {
			a.direction = XY{1, 0}
		}
	}
}

func (a *Agent) SetDoubledPosition(xy XY) {
	a.SetPosition(float64(xy.X)/2, float64(xy.Y)/2)
}

// Flip turns the agent around in place.
func (a *Agent) Flip() {
	a.direction = a.direction.Neg()
}

// Advance moves the agent one traversal in response to an input
// direction. Input opposite to the facing only turns the agent around.
// Otherwise the gadget touching the faced edge is consulted: among the
// traversals leaving the entered port in the current state, forward input
// prefers the front exit, then an unambiguous side exit, then back;
// side inputs take their side's exit. The gadget's state change, if any,
// is returned for undo records.
func (a *Agent) Advance(g *Grid, input XY) (moved bool, change *StateChange) {
	if input.Dot(a.direction) == -1 {
		a.direction = a.direction.Neg()
		return true, nil
	}

	it, slot, ok := g.TouchingEdge(a.doubleXY, a.direction)
	if !ok {
		return false, nil
	}
	port := it.Gadget.Port(slot)
	if port < 0 {
		return false, nil
	}

	brfl := it.Gadget.TargetsBRFL(port, a.direction)
	back, right, front, left := brfl[0], brfl[1], brfl[2], brfl[3]

	var target *SP
	switch {
	case input.Dot(a.direction) == 1:
		// Forward: front, else exactly one of left/right, else back.
		if len(front) > 0 {
			target = &front[0]
		} else if len(left) > 0 && len(right) == 0 {
			target = &left[0]
		} else if len(right) > 0 && len(left) == 0 {
			target = &right[0]
		} else if len(back) > 0 {
			target = &back[0]
		}
	case a.direction.RightCCW() == input:
		if len(left) > 0 {
			target = &left[0]
		}
	default:
		if len(right) > 0 {
			target = &right[0]
		}
	}
	if target == nil {
		return false, nil
	}

	pos2 := it.Gadget.PortDoubledPositions()[target.P]
	if oddness(pos2.X) == 1 {
		if pos2.Y == 0 {
			a.direction = XY{0, -1}
		} else {
			a.direction = XY{0, 1}
		}
	} else {
		if pos2.X == 0 {
			a.direction = XY{-1, 0}
		} else {
			a.direction = XY{1, 0}
		}
	}
	a.doubleXY = XY{it.XY.X*2 + pos2.X, it.XY.Y*2 + pos2.Y}

	if it.Gadget.State() != target.S {
		change = &StateChange{Pos: it.XY, Old: it.Gadget.State()}
		it.Gadget.SetState(target.S)
	}
	return true, change
}

func oddness(v int) int {
	return ((v % 2) + 2) % 2
}

func nearestOdd(v float64) float64 {
	return 2*math.Floor((v-1)/2+0.5) + 1
}

func nearestEven(v float64) float64 {
	return 2 * math.Floor(v/2+0.5)
}
