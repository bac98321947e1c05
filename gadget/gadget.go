package gadget

// An integer cell coordinate on the grid.
type XY struct {
	X, Y int
}

func (a XY) Add(b XY) XY {
	return XY{a.X + b.X, a.Y + b.Y}
}

func (a XY) Sub(b XY) XY {
	return XY{a.X - b.X, a.Y - b.Y}
}

func (a XY) Neg() XY {
	return XY{-a.X, -a.Y}
}

// Rotates the coordinate 90 degrees counterclockwise about the origin.
func (a XY) RightCCW() XY {
	return XY{-a.Y, a.X}
}

func (a XY) Dot(b XY) int {
	return a.X*b.X + a.Y*b.Y
}

// A width and height in cells.
type WH struct {
	W, H int
}

// A placed gadget: a shared definition, a footprint, a port map, and a
// current state.
//
// Ports are located at midpoints of unit segments along the perimeter.
// Perimeter slots are counted counterclockwise from the bottom-left corner:
// bottom edge left to right, right edge bottom to top, top edge right to
// left, left edge top to bottom.
type Gadget struct {
	def  *Def
	name string
	size WH
	// portMap[slot] is the port at that perimeter slot, or -1.
	portMap []Port
	state   State

	// Bumped on every mutation that changes appearance. Lets renderers
	// cache meshes without the gadget knowing about them.
	version int
}

// New constructs a gadget. slots[port] gives the perimeter slot of each
// port in port order.
func New(def *Def, size WH, slots []int, state State) *Gadget {
	perimeter := 2 * (size.W + size.H)
	portMap := make([]Port, perimeter)
	for i := range portMap {
		portMap[i] = -1
	}
	for port, slot := range slots {
		portMap[slot] = Port(port)
	}
	return &Gadget{
		def:     def,
		size:    size,
		portMap: portMap,
		state:   state,
	}
}

func (g *Gadget) Def() *Def {
	return g.def
}

func (g *Gadget) Size() WH {
	return g.size
}

func (g *Gadget) Name() string {
	return g.name
}

// WithName labels the gadget for palettes and tooltips.
func (g *Gadget) WithName(name string) *Gadget {
	g.name = name
	return g
}

// Port returns the port at a perimeter slot, or -1 if the slot is empty.
func (g *Gadget) Port(slot int) Port {
	return g.portMap[slot]
}

// Slot returns the perimeter slot of a port, or -1 if the gadget does not
// expose it.
func (g *Gadget) Slot(p Port) int {
	for slot, port := range g.portMap {
		if port == p {
			return slot
		}
	}
	return -1
}

func (g *Gadget) State() State {
	return g.state
}

func (g *Gadget) SetState(s State) {
	g.state = s
	g.version++
}

// Version changes whenever the gadget's appearance may have changed.
func (g *Gadget) Version() int {
	return g.version
}

// CycleState adds 1 to the state, wrapping back to 0.
func (g *Gadget) CycleState() {
	g.SetState((g.state + 1) % State(g.def.NumStates()))
}

// Clone copies the gadget; the definition stays shared.
func (g *Gadget) Clone() *Gadget {
	portMap := make([]Port, len(g.portMap))
	copy(portMap, g.portMap)
	return &Gadget{
		def:     g.def,
		name:    g.name,
		size:    g.size,
		portMap: portMap,
		state:   g.state,
	}
}

// RotatePorts cycles the ports along the perimeter by some number of
// slots. Positive is counterclockwise.
func (g *Gadget) RotatePorts(slots int) {
	n := len(g.portMap)
	if n == 0 {
		return
	}
	rem := ((-slots)%n + n) % n
	rotated := make([]Port, 0, n)
	rotated = append(rotated, g.portMap[rem:]...)
	rotated = append(rotated, g.portMap[:rem]...)
	g.portMap = rotated
	g.version++
}

// Rotate turns the whole gadget by quarter turns, positive meaning
// counterclockwise. The footprint's width and height swap on odd turns.
//
// A counterclockwise turn sends the old left edge to the bottom, so the
// port map's trailing left-edge block moves to the front.
func (g *Gadget) Rotate(turns int) {
	turns = (turns%4 + 4) % 4
	for i := 0; i < turns; i++ {
		h := g.size.H
		n := len(g.portMap)
		rotated := make([]Port, 0, n)
		rotated = append(rotated, g.portMap[n-h:]...)
		rotated = append(rotated, g.portMap[:n-h]...)
		g.portMap = rotated
		g.size = WH{g.size.H, g.size.W}
	}
	g.version++
}

// FlipX mirrors the gadget horizontally. Reversing the perimeter turns a
// counterclockwise walk into a clockwise one starting at the bottom-right,
// so the bottom-edge block is moved back to the front.
func (g *Gadget) FlipX() {
	n := len(g.portMap)
	flipped := make([]Port, n)
	for i, p := range g.portMap {
		flipped[n-1-i] = p
	}
	w := g.size.W
	g.portMap = append(flipped[n-w:], flipped[:n-w]...)
	g.version++
}

// FlipY mirrors the gadget vertically.
func (g *Gadget) FlipY() {
	g.FlipX()
	g.Rotate(2)
}

// PortDoubledPositions returns each port's position in doubled
// coordinates relative to the bottom-left corner, so edge midpoints are
// integers. Index is port order.
func (g *Gadget) PortDoubledPositions() []XY {
	out := make([]XY, g.def.NumPorts())
	for slot, port := range g.portMap {
		if port >= 0 {
			out[port] = g.slotDoubledPosition(slot)
		}
	}
	return out
}

func (g *Gadget) slotDoubledPosition(slot int) XY {
	w, h := g.size.W, g.size.H
	switch {
	case slot < w: // bottom, left to right
		return XY{2*slot + 1, 0}
	case slot < w+h: // right, bottom to top
		return XY{2 * w, 2*(slot-w) + 1}
	case slot < w+h+w: // top, right to left
		return XY{2*(w+h+w-slot) - 1, 2 * h}
	default: // left, top to bottom
		return XY{0, 2*(2*w+2*h-slot) - 1}
	}
}

// TargetsBRFL buckets the traversals allowed from the given port in the
// current state by exit side relative to a facing direction: back, right,
// front, left.
func (g *Gadget) TargetsBRFL(port Port, direction XY) [4][]SP {
	var offset int
	if direction.X == 0 {
		if direction.Y > 0 {
			offset = 0
		} else {
			offset = 2
		}
	} else {
		if direction.X > 0 {
			offset = 1
		} else {
			offset = 3
		}
	}

	var out [4][]SP
	w, h := g.size.W, g.size.H

	for _, sp := range g.def.TargetsFrom(SP{g.state, port}) {
		slot := g.Slot(sp.P)
		if slot < 0 {
			continue
		}

		var side int
		switch {
		case slot < w:
			side = 0 // bottom
		case slot < w+h:
			side = 1 // right
		case slot < w+h+w:
			side = 2 // top
		default:
			side = 3 // left
		}
		out[(side+offset)%4] = append(out[(side+offset)%4], sp)
	}
	return out
}
