// Package gadget implements the tiles of the contraption: definitions of
// their state machines, placed instances with ports around their perimeter,
// the sparse grid they live on, and the agent that walks through them.
package gadget

import "sort"

// A port on a gadget's perimeter.
type Port int

// A state of a gadget's state machine.
type State int

// A (state, port) combination.
type SP struct {
	S State
	P Port
}

// A (port, port) crossing, regardless of state.
type PP struct {
	P0, P1 Port
}

// A legal move through a gadget: entering From.P in state From.S leaves
// through To.P and puts the gadget in state To.S.
type Traversal struct {
	From, To SP
}

// Shorthand for building traversal tables.
func Tr(s0 State, p0 Port, s1 State, p1 Port) Traversal {
	return Traversal{SP{s0, p0}, SP{s1, p1}}
}

// Definition of a gadget, including ports, states, and traversals.
// Defs are immutable and shared between gadget instances.
type Def struct {
	numPorts   int
	numStates  int
	traversals map[Traversal]struct{}
}

// NewDef constructs the "nope" definition: no traversals at all.
func NewDef(numStates, numPorts int) *Def {
	return &Def{
		numPorts:   numPorts,
		numStates:  numStates,
		traversals: map[Traversal]struct{}{},
	}
}

func DefFromTraversals(numStates, numPorts int, traversals ...Traversal) *Def {
	d := NewDef(numStates, numPorts)
	for _, t := range traversals {
		d.traversals[t] = struct{}{}
	}
	return d
}

func (d *Def) NumPorts() int {
	return d.numPorts
}

func (d *Def) NumStates() int {
	return d.numStates
}

// Traversals returns the traversal table in a stable order.
func (d *Def) Traversals() []Traversal {
	out := make([]Traversal, 0, len(d.traversals))
	for t := range d.traversals {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(a, b Traversal) bool {
	if a.From != b.From {
		if a.From.S != b.From.S {
			return a.From.S < b.From.S
		}
		return a.From.P < b.From.P
	}
	if a.To.S != b.To.S {
		return a.To.S < b.To.S
	}
	return a.To.P < b.To.P
}

func (d *Def) Allows(t Traversal) bool {
	_, ok := d.traversals[t]
	return ok
}

// TargetsFrom lists all the destinations allowed from a state and port,
// sorted by state then port.
func (d *Def) TargetsFrom(sp SP) []SP {
	var out []SP
	for t := range d.traversals {
		if t.From == sp {
			out = append(out, t.To)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].S != out[j].S {
			return out[i].S < out[j].S
		}
		return out[i].P < out[j].P
	})
	return out
}

// PortTraversalsInState collects the port-to-port crossings allowed in a
// given state.
func (d *Def) PortTraversalsInState(s State) map[PP]struct{} {
	out := map[PP]struct{}{}
	for t := range d.traversals {
		if t.From.S == s {
			out[PP{t.From.P, t.To.P}] = struct{}{}
		}
	}
	return out
}
