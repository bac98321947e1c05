package gadget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadgets/bitcodec"
)

func TestEncodeEmptyGrid(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, "", EncodeGrid(g))

	got, err := DecodeGrid("")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestGridRoundTrip(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Straight").Clone(), XY{0, 0}, WH{1, 1})
	g.Insert(findPreset(t, "Turn").Clone(), XY{-3, 2}, WH{1, 1})
	toggle := findPreset(t, "Toggle").Clone()
	toggle.SetState(1)
	g.Insert(toggle, XY{1, 0}, WH{1, 1})
	door := findPreset(t, "Door").Clone()
	g.Insert(door, XY{5, -1}, door.Size())

	got, err := DecodeGrid(EncodeGrid(g))
	require.NoError(t, err)

	want := g.Items()
	items := got.Items()
	require.Len(t, items, len(want))
	for i, it := range items {
		assert.Equal(t, want[i].XY, it.XY)
		assert.Equal(t, want[i].Size, it.Size)
		assert.Equal(t, want[i].Gadget.State(), it.Gadget.State())
		assert.Equal(t, want[i].Gadget.Def().Traversals(), it.Gadget.Def().Traversals())
		for slot := 0; slot < 2*(it.Size.W+it.Size.H); slot++ {
			assert.Equal(t, want[i].Gadget.Port(slot), it.Gadget.Port(slot),
				"slot %d of item %d", slot, i)
		}
	}
}

func TestRoundTripSharesDefs(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Toggle").Clone(), XY{0, 0}, WH{1, 1})
	g.Insert(findPreset(t, "Toggle").Clone(), XY{1, 0}, WH{1, 1})

	got, err := DecodeGrid(EncodeGrid(g))
	require.NoError(t, err)
	items := got.Items()
	require.Len(t, items, 2)
	assert.Same(t, items[0].Gadget.Def(), items[1].Gadget.Def())
}

func TestDecodedGridStillPlays(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Toggle").Clone(), XY{0, 0}, WH{1, 1})

	got, err := DecodeGrid(EncodeGrid(g))
	require.NoError(t, err)

	a := NewAgent(0.5, 0, XY{0, 1})
	moved, change := a.Advance(got, XY{0, 1})
	require.True(t, moved)
	require.NotNil(t, change)
	it, ok := got.Get(XY{0, 0})
	require.True(t, ok)
	assert.Equal(t, State(1), it.Gadget.State())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, s := range []string{"!", "A", "A9", "AAAA0"} {
		_, err := DecodeGrid(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDecodeRejectsHostileLengths(t *testing.T) {
	// The share string is the one input an attacker controls. A handful
	// of characters claiming a billion traversals must be rejected up
	// front, not answered with a multi-gigabyte allocation.
	for _, build := range []func(w *bitcodec.Writer){
		func(w *bitcodec.Writer) {
			w.WriteLen(1 << 30) // defs
		},
		func(w *bitcodec.Writer) {
			w.WriteLen(1)       // defs
			w.WriteLen(2)       // states
			w.WriteLen(2)       // ports
			w.WriteLen(1 << 30) // traversals
		},
		func(w *bitcodec.Writer) {
			w.WriteLen(0)       // defs
			w.WriteLen(1 << 30) // items
		},
	} {
		w := bitcodec.NewWriter()
		build(w)
		_, err := DecodeGrid(w.String())
		assert.Error(t, err)
	}
}

func TestDecodeRejectsTruncation(t *testing.T) {
	g := NewGrid()
	g.Insert(findPreset(t, "Crumbler").Clone(), XY{0, 0}, WH{1, 1})
	enc := EncodeGrid(g)
	require.Greater(t, len(enc), 2)

	// The first character promises a definition that the chopped body
	// can no longer deliver.
	_, err := DecodeGrid(enc[:1] + "0")
	assert.Error(t, err)
}
