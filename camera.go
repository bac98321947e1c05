package main

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/hajimehoshi/ebiten/v2"
)

type Mx = ebiten.GeoM

// World units: Increasing Y is moving up in the world.
// Screen units: opposite

// Zoom limits in world units.
const (
	minViewHeight = 1
	maxViewHeight = 32
	maxViewWidth  = 128
)

type Camera struct {
	// half width/height of visible world in world units
	hw, hh float64
	// center of the camera in world units
	x, y float64
	// screen dimensions in pixels
	sw, sh int
}

// Returns a transformation that converts points in world coordinates to screen coordinates
func (c *Camera) ToScreen() Mx {
	geo := Mx{}
	geo.Translate(-c.x+c.hw, -c.y+c.hh)
	geo.Scale(1/(2*c.hw), 1/(2*c.hh))
	geo.Scale(1, -1)
	geo.Translate(0, 1)
	geo.Scale(float64(c.sw), float64(c.sh))
	return geo
}

// Returns a transformation that converts points in screen coordinates to world coordinates
func (c *Camera) ToWorld() Mx {
	geo := c.ToScreen()
	geo.Invert()
	return geo
}

// Cursor returns the mouse position in world coordinates.
func (c *Camera) Cursor() (float64, float64) {
	sx, sy := ebiten.CursorPosition()
	toWorld := c.ToWorld()
	return toWorld.Apply(float64(sx), float64(sy))
}

// DragWorld converts a drag delta in screen pixels into world units.
func (c *Camera) DragWorld(d box2d.B2Vec2) box2d.B2Vec2 {
	return box2d.B2Vec2{
		X: 2 * c.hw * d.X / float64(c.sw),
		Y: -2 * c.hh * d.Y / float64(c.sh),
	}
}

// Pan moves the camera center by a world-unit delta.
func (c *Camera) Pan(dx, dy float64) {
	c.x += dx
	c.y += dy
}

// Zoom scales the visible world height by the given factor, keeping the
// world point under the anchor (in screen pixels) fixed on screen.
func (c *Camera) Zoom(factor, anchorX, anchorY float64) {
	toWorld := c.ToWorld()
	wx, wy := toWorld.Apply(anchorX, anchorY)

	c.hh *= factor
	c.clamp()

	// Reposition so the anchor's world point lands on the same pixel.
	toWorld = c.ToWorld()
	nx, ny := toWorld.Apply(anchorX, anchorY)
	c.x += wx - nx
	c.y += wy - ny
}

func (c *Camera) clamp() {
	c.hh = math.Min(math.Max(c.hh, minViewHeight/2.), maxViewHeight/2.)
	c.hw = c.hh * float64(c.sw) / float64(c.sh)
	if c.hw > maxViewWidth/2. {
		c.hw = maxViewWidth / 2.
		c.hh = c.hw * float64(c.sh) / float64(c.sw)
	}
}

func (c *Camera) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	c.sw = outsideWidth
	c.sh = outsideHeight
	c.clamp()
	return outsideWidth, outsideHeight
}
