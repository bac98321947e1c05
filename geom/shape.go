package geom

import (
	"github.com/chewxy/math32"
)

// A shape that can be turned into a triangle mesh of a single color.
type Shape interface {
	Triangles(c Color) Triangles
}

type Rectangle struct {
	MinX, MaxX, MinY, MaxY float32
	Z                      float32
}

func (r Rectangle) Triangles(c Color) Triangles {
	return Triangles{
		Vertices: []Vertex{
			{r.MinX, r.MinY, r.Z, c},
			{r.MaxX, r.MinY, r.Z, c},
			{r.MaxX, r.MaxY, r.Z, c},
			{r.MinX, r.MaxY, r.Z, c},
		},
		Indexes: []uint16{0, 1, 2, 2, 3, 0},
	}
}

type Circle struct {
	X, Y, Z float32
	Radius  float32
}

// Segments per full circle. Plenty at gadget scale.
const circleResolution = 32

func (c Circle) Triangles(clr Color) Triangles {
	var t Triangles
	for i := 0; i < circleResolution; i++ {
		a := 2 * math32.Pi * float32(i) / circleResolution
		t.Vertices = append(t.Vertices, Vertex{
			X:     math32.Cos(a)*c.Radius + c.X,
			Y:     math32.Sin(a)*c.Radius + c.Y,
			Z:     c.Z,
			Color: clr,
		})
	}
	for i := 1; i < circleResolution-1; i++ {
		t.Indexes = append(t.Indexes, 0, uint16(i), uint16(i+1))
	}
	return t
}

// A series of line segments with thickness. Joins are mitered.
type Path struct {
	XYs       []Pt
	Z         float32
	Thickness float32
	Closed    bool
}

// Steps used when flattening a bezier into a path.
const bezierResolution = 32

// Splits a cubic bezier curve into line segments.
// The control points are [vertex 0, end control 0, start control 1, vertex 1].
func Bezier3(xys [4]Pt, z, thickness float32) Path {
	pts := make([]Pt, 0, bezierResolution+1)
	for i := 0; i <= bezierResolution; i++ {
		t := float32(i) / bezierResolution
		tr := 1 - t
		t2 := t * t
		tr2 := tr * tr
		p := xys[0].Scale(tr2 * tr)
		p = p.Add(xys[1].Scale(3 * tr2 * t))
		p = p.Add(xys[2].Scale(3 * t2 * tr))
		p = p.Add(xys[3].Scale(t2 * t))
		pts = append(pts, p)
	}
	return Path{XYs: pts, Z: z, Thickness: thickness}
}

func normalizeTo(p Pt, length float32) Pt {
	d := math32.Hypot(p.X, p.Y)
	if d == 0 {
		return Pt{}
	}
	return p.Scale(length / d)
}

func (p Path) StartPosition() Pt {
	return p.XYs[0]
}

func (p Path) EndPosition() Pt {
	return p.XYs[len(p.XYs)-1]
}

func (p Path) StartDirection() Pt {
	return normalizeTo(p.XYs[1].Sub(p.XYs[0]), 1)
}

func (p Path) EndDirection() Pt {
	n := len(p.XYs)
	return normalizeTo(p.XYs[n-1].Sub(p.XYs[n-2]), 1)
}

func (p Path) Len() float32 {
	var sum float32
	for i := 0; i+1 < len(p.XYs); i++ {
		d := p.XYs[i+1].Sub(p.XYs[i])
		sum += math32.Hypot(d.X, d.Y)
	}
	if p.Closed && len(p.XYs) > 1 {
		d := p.XYs[0].Sub(p.XYs[len(p.XYs)-1])
		sum += math32.Hypot(d.X, d.Y)
	}
	return sum
}

// Emits two vertices per path point, offset half the thickness to either
// side. Interior points get the averaged (mitered) normal of the adjacent
// segments; open endpoints use the normal of their single segment.
func (p Path) positions() []Pt {
	n := len(p.XYs)
	out := make([]Pt, 0, 2*n)

	normal := func(from, to Pt) Pt {
		return normalizeTo(to.Sub(from).RightCCW(), p.Thickness/2)
	}

	for i := 0; i < n; i++ {
		v1 := p.XYs[i]
		var dv Pt
		switch {
		case !p.Closed && i == 0:
			dv = normal(v1, p.XYs[1])
		case !p.Closed && i == n-1:
			dv = normal(p.XYs[n-2], v1)
		default:
			v0 := p.XYs[(i-1+n)%n]
			v2 := p.XYs[(i+1)%n]
			d0 := normalizeTo(v1.Sub(v0), 1).RightCCW()
			d1 := normalizeTo(v2.Sub(v1), 1).RightCCW()
			dv = normalizeTo(d0.Add(d1), p.Thickness/2)
		}
		out = append(out, v1.Add(dv), v1.Sub(dv))
	}
	return out
}

func (p Path) Triangles(c Color) Triangles {
	var t Triangles
	for _, pos := range p.positions() {
		t.Vertices = append(t.Vertices, Vertex{pos.X, pos.Y, p.Z, c})
	}

	n := uint16(len(p.XYs))
	segs := n - 1
	if p.Closed {
		segs = n
	}
	for i := uint16(0); i < segs; i++ {
		j := (i + 1) % n
		t.Indexes = append(t.Indexes,
			2*i+1, 2*j+1, 2*j,
			2*j, 2*i, 2*i+1,
		)
	}
	return t
}
