package geom

// A point in the world plane.
type Pt struct {
	X, Y float32
}

// Rotates the point 90 degrees counterclockwise about the origin.
func (p Pt) RightCCW() Pt {
	return Pt{-p.Y, p.X}
}

func (p Pt) Add(q Pt) Pt {
	return Pt{p.X + q.X, p.Y + q.Y}
}

func (p Pt) Sub(q Pt) Pt {
	return Pt{p.X - q.X, p.Y - q.Y}
}

func (p Pt) Scale(s float32) Pt {
	return Pt{p.X * s, p.Y * s}
}

// RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// A single mesh vertex. Z is a layering hint: triangles are assembled
// back to front, so later vertices draw over earlier ones regardless of Z,
// but the value is kept so meshes can be re-sorted after an append.
type Vertex struct {
	X, Y, Z float32
	Color   Color
}

// A triangle mesh. Indexes are in groups of three.
type Triangles struct {
	Vertices []Vertex
	Indexes  []uint16
}

// Appends another mesh, re-basing its indexes.
func (t *Triangles) Append(other Triangles) {
	base := uint16(len(t.Vertices))
	t.Vertices = append(t.Vertices, other.Vertices...)
	for _, i := range other.Indexes {
		t.Indexes = append(t.Indexes, base+i)
	}
}

func (t *Triangles) Clear() {
	t.Vertices = t.Vertices[:0]
	t.Indexes = t.Indexes[:0]
}
