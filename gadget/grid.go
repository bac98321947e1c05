package gadget

import (
	"math"
	"sort"
)

// An item stored in the grid: the gadget, its minimal cell coordinate, and
// its footprint.
type Item struct {
	Gadget *Gadget
	XY     XY
	Size   WH
}

// Grid is a sparse grid of gadgets that do not necessarily take up a 1x1
// slot. Every covered cell maps back to its item.
type Grid struct {
	items map[uint64]*Item
	cells map[XY]uint64
	next  uint64
}

func NewGrid() *Grid {
	return &Grid{
		items: map[uint64]*Item{},
		cells: map[XY]uint64{},
	}
}

func (g *Grid) Len() int {
	return len(g.items)
}

func (g *Grid) IsEmpty() bool {
	return len(g.items) == 0
}

// Get returns the item covering a cell.
func (g *Grid) Get(pos XY) (*Item, bool) {
	idx, ok := g.cells[pos]
	if !ok {
		return nil, false
	}
	return g.items[idx], true
}

// GetAt returns the item covering a world-space point.
func (g *Grid) GetAt(x, y float64) (*Item, bool) {
	return g.Get(XY{int(math.Floor(x)), int(math.Floor(y))})
}

// Items returns all items in insertion order.
func (g *Grid) Items() []*Item {
	keys := make([]uint64, 0, len(g.items))
	for k := range g.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]*Item, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.items[k])
	}
	return out
}

// InBounds returns the items whose footprint intersects the given world
// rectangle.
func (g *Grid) InBounds(minX, maxX, minY, maxY float64) []*Item {
	var out []*Item
	for _, it := range g.Items() {
		x, y := float64(it.XY.X), float64(it.XY.Y)
		w, h := float64(it.Size.W), float64(it.Size.H)
		if x+w >= minX && x <= maxX && y+h >= minY && y <= maxY {
			out = append(out, it)
		}
	}
	return out
}

// EmptyInBounds returns the uncovered cells inside the given world
// rectangle.
func (g *Grid) EmptyInBounds(minX, maxX, minY, maxY float64) []XY {
	var out []XY
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			xy := XY{x, y}
			if _, ok := g.cells[xy]; !ok {
				out = append(out, xy)
			}
		}
	}
	return out
}

// Insert places a gadget at a minimal cell coordinate. Overlapped items
// are removed and returned, for undo records.
func (g *Grid) Insert(gd *Gadget, pos XY, size WH) []Item {
	var removed []Item
	for y := pos.Y; y < pos.Y+size.H; y++ {
		for x := pos.X; x < pos.X+size.W; x++ {
			if it, ok := g.Remove(XY{x, y}); ok {
				removed = append(removed, it)
			}
		}
	}

	idx := g.next
	g.next++
	g.items[idx] = &Item{Gadget: gd, XY: pos, Size: size}
	for y := pos.Y; y < pos.Y+size.H; y++ {
		for x := pos.X; x < pos.X+size.W; x++ {
			g.cells[XY{x, y}] = idx
		}
	}
	return removed
}

// Remove deletes the item covering a cell and returns it.
func (g *Grid) Remove(pos XY) (Item, bool) {
	idx, ok := g.cells[pos]
	if !ok {
		return Item{}, false
	}
	it := g.items[idx]
	delete(g.items, idx)
	for y := it.XY.Y; y < it.XY.Y+it.Size.H; y++ {
		for x := it.XY.X; x < it.XY.X+it.Size.W; x++ {
			delete(g.cells, XY{x, y})
		}
	}
	return *it, true
}

// TouchingEdge finds the item touching the edge centered at doubleXY / 2
// on the side given by direction, along with the perimeter slot hit.
// doubleXY must be an edge midpoint: exactly one coordinate odd.
func (g *Grid) TouchingEdge(doubleXY, direction XY) (*Item, int, bool) {
	xMis := ((doubleXY.X % 2) + 2) % 2
	yMis := ((doubleXY.Y % 2) + 2) % 2
	if xMis == yMis {
		return nil, 0, false
	}

	xy := XY{divFloor(doubleXY.X, 2), divFloor(doubleXY.Y, 2)}
	if direction.X < 0 {
		xy.X--
	}
	if direction.Y < 0 {
		xy.Y--
	}

	it, ok := g.Get(xy)
	if !ok {
		return nil, 0, false
	}

	if direction.X < 0 {
		xy.X++
	}
	if direction.Y < 0 {
		xy.Y++
	}

	w, h := it.Size.W, it.Size.H
	var slot int
	if xMis != 0 {
		if xy.Y == it.XY.Y {
			// bottom edge
			slot = xy.X - it.XY.X
		} else {
			// top edge
			slot = w + h + w - (xy.X - it.XY.X) - 1
		}
	} else {
		if xy.X == it.XY.X {
			// left edge
			slot = 2*w + 2*h - (xy.Y - it.XY.Y) - 1
		} else {
			// right edge
			slot = w + (xy.Y - it.XY.Y)
		}
	}
	return it, slot, true
}

func divFloor(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Translate shifts every item by a cell offset.
func (g *Grid) Translate(d XY) *Grid {
	out := NewGrid()
	for _, it := range g.Items() {
		out.Insert(it.Gadget, it.XY.Add(d), it.Size)
	}
	return out
}

// Center translates the grid so its bounding box centers near the origin.
func (g *Grid) Center() *Grid {
	if g.IsEmpty() {
		return g
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, it := range g.Items() {
		minX = min(minX, it.XY.X)
		minY = min(minY, it.XY.Y)
		maxX = max(maxX, it.XY.X+it.Size.W)
		maxY = max(maxY, it.XY.Y+it.Size.H)
	}
	return g.Translate(XY{-(minX + maxX) / 2, -(minY + maxY) / 2})
}

// Rotate turns the whole grid by quarter turns counterclockwise about the
// center of the cell at the origin. Each gadget turns with it.
func (g *Grid) Rotate(turns int) *Grid {
	turns = (turns%4 + 4) % 4
	out := g
	for i := 0; i < turns; i++ {
		next := NewGrid()
		for _, it := range out.Items() {
			gd := it.Gadget.Clone()
			gd.Rotate(1)
			// Rotating the footprint about (0.5, 0.5) sends (x, y) to
			// (1 - y, x), so the new minimal corner comes from the old
			// maximal y.
			pos := XY{1 - it.XY.Y - it.Size.H, it.XY.X}
			next.Insert(gd, pos, gd.Size())
		}
		out = next
	}
	return out
}

// FlipX mirrors the grid about the vertical line x = 0.5.
func (g *Grid) FlipX() *Grid {
	out := NewGrid()
	for _, it := range g.Items() {
		gd := it.Gadget.Clone()
		gd.FlipX()
		pos := XY{1 - it.XY.X - it.Size.W, it.XY.Y}
		out.Insert(gd, pos, gd.Size())
	}
	return out
}

// FlipY mirrors the grid about the horizontal line y = 0.5.
func (g *Grid) FlipY() *Grid {
	out := NewGrid()
	for _, it := range g.Items() {
		gd := it.Gadget.Clone()
		gd.FlipY()
		pos := XY{it.XY.X, 1 - it.XY.Y - it.Size.H}
		out.Insert(gd, pos, gd.Size())
	}
	return out
}

// Clone deep-copies the grid; gadget definitions stay shared.
func (g *Grid) Clone() *Grid {
	out := NewGrid()
	for _, it := range g.Items() {
		out.Insert(it.Gadget.Clone(), it.XY, it.Size)
	}
	return out
}
