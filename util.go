package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"gadgets/geom"
)

var (
	emptyImage    = ebiten.NewImage(3, 3)
	emptySubImage = emptyImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	emptyImage.Fill(color.White)
}

// Utillity for drawing lines with a transformation
func drawline(img *ebiten.Image, srcx, srcy, dstx, dsty float64, thickness float64, geom Mx, c color.Color) {
	x1, y1 := geom.Apply(srcx, srcy)
	x2, y2 := geom.Apply(dstx, dsty)

	length := math.Hypot(x2-x1, y2-y1)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Rotate(math.Atan2(y2-y1, x2-x1))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(c)
	// Filter must be 'nearest' filter (default).
	// Linear filtering would make edges blurred.
	img.DrawImage(emptySubImage, op)
}

// Renders a world-space mesh through the given transformation with a shader.
// Z coordinates order the triangles back to front before submission.
func drawTriangles(img *ebiten.Image, ts *geom.Triangles, geo Mx, shader *ebiten.Shader, uniforms map[string]any) {
	if len(ts.Indexes) == 0 {
		return
	}

	order := make([]int, len(ts.Indexes)/3)
	for i := range order {
		order[i] = i
	}
	zOf := func(tri int) float32 {
		return ts.Vertices[ts.Indexes[tri*3]].Z
	}
	// Insertion sort keeps the common already-sorted case cheap.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && zOf(order[j]) < zOf(order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	vertices := make([]ebiten.Vertex, len(ts.Vertices))
	for i, v := range ts.Vertices {
		sx, sy := geo.Apply(float64(v.X), float64(v.Y))
		vertices[i] = ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   1,
			SrcY:   1,
			ColorR: v.Color.R,
			ColorG: v.Color.G,
			ColorB: v.Color.B,
			ColorA: v.Color.A,
		}
	}
	indexes := make([]uint16, 0, len(ts.Indexes))
	for _, tri := range order {
		indexes = append(indexes, ts.Indexes[tri*3], ts.Indexes[tri*3+1], ts.Indexes[tri*3+2])
	}

	img.DrawTrianglesShader(vertices, indexes, shader, &ebiten.DrawTrianglesShaderOptions{
		Uniforms: uniforms,
	})
}
