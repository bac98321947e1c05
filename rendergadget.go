package main

import (
	"sort"

	"gadgets/gadget"
	"gadgets/geom"
)

// Mesh layering, back to front.
const (
	zBody      = 0
	zOutline   = 0.1
	zTraversal = 0.2
	zPort      = 0.3
)

const (
	portRadius    = 0.05
	pathThickness = 0.05
	// How far traversal curves bow into the tile.
	controlPull = 0.25
)

var (
	bodyColor    = geom.Color{R: 0.98, G: 0.95, B: 0.86, A: 1}
	portColor    = geom.Color{R: 0, G: 0, B: 0.75, A: 1}
	outlineColor = geom.Color{R: 0, G: 0, B: 0, A: 1}
	pathColor    = geom.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	agentColor   = geom.Color{R: 0.85, G: 0.1, B: 0.1, A: 1}
	gridColor    = geom.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.35}
)

type cachedMesh struct {
	version int
	ts      geom.Triangles
}

// meshCache keeps one built mesh per gadget, rebuilt when the gadget's
// version counter moves.
type meshCache struct {
	meshes map[*gadget.Gadget]*cachedMesh
}

func newMeshCache() *meshCache {
	return &meshCache{meshes: map[*gadget.Gadget]*cachedMesh{}}
}

func (c *meshCache) Mesh(g *gadget.Gadget) *geom.Triangles {
	m, ok := c.meshes[g]
	if !ok || m.version != g.Version() {
		m = &cachedMesh{version: g.Version(), ts: BuildGadgetMesh(g)}
		c.meshes[g] = m
	}
	return &m.ts
}

// Drop forgets gadgets no longer on any grid.
func (c *meshCache) Drop(g *gadget.Gadget) {
	delete(c.meshes, g)
}

// BuildGadgetMesh renders a gadget into triangles in local world units,
// with the tile's bottom-left corner at the origin.
func BuildGadgetMesh(g *gadget.Gadget) geom.Triangles {
	var out geom.Triangles
	size := g.Size()
	w, h := float32(size.W), float32(size.H)

	out.Append(geom.Rectangle{MinX: 0, MaxX: w, MinY: 0, MaxY: h, Z: zBody}.Triangles(bodyColor))

	// Multiple states read as "this tile has memory", so give it a frame.
	if g.Def().NumStates() > 1 {
		frame := geom.Path{
			XYs: []geom.Pt{
				{X: 0, Y: 0},
				{X: w, Y: 0},
				{X: w, Y: h},
				{X: 0, Y: h},
			},
			Z:         zOutline,
			Thickness: 2 * pathThickness,
			Closed:    true,
		}
		out.Append(frame.Triangles(outlineColor))
	}

	positions := g.PortDoubledPositions()
	ports := make([]geom.Pt, len(positions))
	for p, pos2 := range positions {
		ports[p] = geom.Pt{X: float32(pos2.X) / 2, Y: float32(pos2.Y) / 2}
	}

	for _, pp := range sortedTraversalList(g) {
		reverse := gadget.PP{P0: pp.P1, P1: pp.P0}
		_, twoWay := g.Def().PortTraversalsInState(g.State())[reverse]
		if twoWay && pp.P0 > pp.P1 {
			continue
		}

		p0 := ports[pp.P0]
		p1 := ports[pp.P1]
		in0 := inwardNormal(positions[pp.P0], size)
		in1 := inwardNormal(positions[pp.P1], size)

		var curve [4]geom.Pt
		if pp.P0 == pp.P1 {
			// A self loop bows sideways so it is visible at all.
			side := in0.RightCCW()
			curve = [4]geom.Pt{
				p0,
				p0.Add(in0.Scale(2 * controlPull)).Add(side.Scale(controlPull)),
				p0.Add(in0.Scale(2 * controlPull)).Sub(side.Scale(controlPull)),
				p1,
			}
		} else {
			curve = [4]geom.Pt{
				p0,
				p0.Add(in0.Scale(controlPull)),
				p1.Add(in1.Scale(controlPull)),
				p1,
			}
		}
		path := geom.Bezier3(curve, zTraversal, pathThickness)
		out.Append(path.Triangles(pathColor))

		if !twoWay {
			out.Append(arrowhead(path).Triangles(pathColor))
		}
	}

	for _, pt := range ports {
		out.Append(geom.Circle{X: pt.X, Y: pt.Y, Z: zPort, Radius: portRadius}.Triangles(portColor))
	}
	return out
}

// arrowhead builds the two short strokes of a one way marker at the end
// of a traversal curve, pointing the way the curve travels.
func arrowhead(curve geom.Path) geom.Path {
	tip := curve.EndPosition()
	dir := curve.EndDirection()
	back := tip.Sub(dir.Scale(0.2))
	side := dir.RightCCW().Scale(0.1)
	return geom.Path{
		XYs:       []geom.Pt{back.Add(side), tip, back.Sub(side)},
		Z:         curve.Z,
		Thickness: pathThickness,
	}
}

// inwardNormal is the unit direction from a port's edge into the tile.
func inwardNormal(pos2 gadget.XY, size gadget.WH) geom.Pt {
	switch {
	case pos2.Y == 0:
		return geom.Pt{X: 0, Y: 1}
	case pos2.Y == 2*size.H:
		return geom.Pt{X: 0, Y: -1}
	case pos2.X == 0:
		return geom.Pt{X: 1, Y: 0}
	default:
		return geom.Pt{X: -1, Y: 0}
	}
}

func sortedTraversalList(g *gadget.Gadget) []gadget.PP {
	set := g.Def().PortTraversalsInState(g.State())
	out := make([]gadget.PP, 0, len(set))
	for pp := range set {
		out = append(out, pp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].P0 != out[j].P0 {
			return out[i].P0 < out[j].P0
		}
		return out[i].P1 < out[j].P1
	})
	return out
}

// BuildAgentMesh renders the walker as an arrowhead centered on the
// origin pointing along +Y. The caller rotates it to the facing.
func BuildAgentMesh() geom.Triangles {
	arrow := geom.Path{
		XYs: []geom.Pt{
			{X: -0.15, Y: -0.1},
			{X: 0, Y: 0.2},
			{X: 0.15, Y: -0.1},
		},
		Z:         zPort,
		Thickness: 0.06,
	}
	return arrow.Triangles(agentColor)
}
