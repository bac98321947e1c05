package gadget

import (
	"fmt"

	"gadgets/bitcodec"
)

// Share-string encoding of a grid. Definitions are deduplicated, then
// each gadget records its def index, footprint, port slots, state, and
// position. Everything is small integers, so the bitcodec keeps it short
// enough for a URL hash.

// EncodeGrid renders the grid as a share string. An empty grid encodes to
// the empty string.
func EncodeGrid(g *Grid) string {
	if g.IsEmpty() {
		return ""
	}

	items := g.Items()

	var defs []*Def
	defIndex := map[*Def]int{}
	for _, it := range items {
		d := it.Gadget.Def()
		if _, ok := defIndex[d]; !ok {
			defIndex[d] = len(defs)
			defs = append(defs, d)
		}
	}

	w := bitcodec.NewWriter()
	w.WriteLen(len(defs))
	for _, d := range defs {
		w.WriteLen(d.NumStates())
		w.WriteLen(d.NumPorts())
		trs := d.Traversals()
		w.WriteLen(len(trs))
		for _, t := range trs {
			w.WriteUint(uint64(t.From.S))
			w.WriteUint(uint64(t.From.P))
			w.WriteUint(uint64(t.To.S))
			w.WriteUint(uint64(t.To.P))
		}
	}

	w.WriteLen(len(items))
	for _, it := range items {
		gd := it.Gadget
		w.WriteLen(defIndex[gd.Def()])
		w.WriteLen(it.Size.W)
		w.WriteLen(it.Size.H)
		for slot := 0; slot < 2*(it.Size.W+it.Size.H); slot++ {
			p := gd.Port(slot)
			w.WriteOption(p >= 0)
			if p >= 0 {
				w.WriteUint(uint64(p))
			}
		}
		w.WriteUint(uint64(gd.State()))
		w.WriteInt(int64(it.XY.X))
		w.WriteInt(int64(it.XY.Y))
	}

	return w.String()
}

// DecodeGrid parses a share string produced by EncodeGrid. The empty
// string decodes to an empty grid.
func DecodeGrid(s string) (*Grid, error) {
	if s == "" {
		return NewGrid(), nil
	}

	r, err := bitcodec.NewReader(s)
	if err != nil {
		return nil, err
	}

	numDefs, err := r.ReadLen()
	if err != nil {
		return nil, fmt.Errorf("decode defs: %w", err)
	}
	defs := make([]*Def, 0, numDefs)
	for i := 0; i < numDefs; i++ {
		numStates, err := r.ReadLen()
		if err != nil {
			return nil, fmt.Errorf("decode def %d: %w", i, err)
		}
		numPorts, err := r.ReadLen()
		if err != nil {
			return nil, fmt.Errorf("decode def %d: %w", i, err)
		}
		numTrs, err := r.ReadLen()
		if err != nil {
			return nil, fmt.Errorf("decode def %d: %w", i, err)
		}
		trs := make([]Traversal, 0, numTrs)
		for j := 0; j < numTrs; j++ {
			var vals [4]uint64
			for k := range vals {
				vals[k], err = r.ReadUint()
				if err != nil {
					return nil, fmt.Errorf("decode def %d traversal %d: %w", i, j, err)
				}
			}
			trs = append(trs, Tr(State(vals[0]), Port(vals[1]), State(vals[2]), Port(vals[3])))
		}
		defs = append(defs, DefFromTraversals(numStates, numPorts, trs...))
	}

	numItems, err := r.ReadLen()
	if err != nil {
		return nil, fmt.Errorf("decode gadgets: %w", err)
	}
	grid := NewGrid()
	for i := 0; i < numItems; i++ {
		defIdx, err := r.ReadLen()
		if err != nil {
			return nil, fmt.Errorf("decode gadget %d: %w", i, err)
		}
		if defIdx >= len(defs) {
			return nil, fmt.Errorf("decode gadget %d: def index %d out of range", i, defIdx)
		}
		width, err := r.ReadLen()
		if err != nil {
			return nil, fmt.Errorf("decode gadget %d: %w", i, err)
		}
		height, err := r.ReadLen()
		if err != nil {
			return nil, fmt.Errorf("decode gadget %d: %w", i, err)
		}
		if width < 1 || height < 1 {
			return nil, fmt.Errorf("decode gadget %d: bad size %dx%d", i, width, height)
		}

		d := defs[defIdx]
		slots := make([]int, d.NumPorts())
		for s := range slots {
			slots[s] = -1
		}
		for slot := 0; slot < 2*(width+height); slot++ {
			present, err := r.ReadOption()
			if err != nil {
				return nil, fmt.Errorf("decode gadget %d: %w", i, err)
			}
			if !present {
				continue
			}
			p, err := r.ReadUint()
			if err != nil {
				return nil, fmt.Errorf("decode gadget %d: %w", i, err)
			}
			if int(p) >= d.NumPorts() {
				return nil, fmt.Errorf("decode gadget %d: port %d out of range", i, p)
			}
			slots[p] = slot
		}

		state, err := r.ReadUint()
		if err != nil {
			return nil, fmt.Errorf("decode gadget %d: %w", i, err)
		}
		if int(state) >= d.NumStates() {
			return nil, fmt.Errorf("decode gadget %d: state %d out of range", i, state)
		}
		x, err := r.ReadInt()
		if err != nil {
			return nil, fmt.Errorf("decode gadget %d: %w", i, err)
		}
		y, err := r.ReadInt()
		if err != nil {
			return nil, fmt.Errorf("decode gadget %d: %w", i, err)
		}

		present := make([]int, 0, d.NumPorts())
		for _, slot := range slots {
			if slot >= 0 {
				present = append(present, slot)
			}
		}
		if len(present) != d.NumPorts() {
			return nil, fmt.Errorf("decode gadget %d: missing ports", i)
		}

		gd := New(d, WH{width, height}, present, State(state))
		grid.Insert(gd, XY{int(x), int(y)}, gd.Size())
	}

	if err := r.Done(); err != nil {
		return nil, err
	}
	return grid, nil
}
