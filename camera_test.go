package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToScreenRoundTrip(t *testing.T) {
	c := Camera{hw: 8, hh: 6, x: 3, y: -2, sw: 800, sh: 600}

	toScreen := c.ToScreen()
	toWorld := c.ToWorld()

	sx, sy := toScreen.Apply(3, -2)
	assert.InDelta(t, 400, sx, 1e-9, "camera center lands mid screen")
	assert.InDelta(t, 300, sy, 1e-9)

	wx, wy := toWorld.Apply(sx, sy)
	assert.InDelta(t, 3, wx, 1e-9)
	assert.InDelta(t, -2, wy, 1e-9)
}

func TestToScreenYPointsDown(t *testing.T) {
	c := Camera{hw: 8, hh: 6, sw: 800, sh: 600}
	toScreen := c.ToScreen()

	_, top := toScreen.Apply(0, 6)
	_, bottom := toScreen.Apply(0, -6)
	assert.Less(t, top, bottom, "higher world Y draws nearer the top")
}

func TestZoomClamps(t *testing.T) {
	c := Camera{hw: 8, hh: 8, sw: 1000, sh: 1000}

	c.Zoom(1e-6, 500, 500)
	assert.InDelta(t, minViewHeight/2., c.hh, 1e-9)

	c.Zoom(1e6, 500, 500)
	assert.InDelta(t, maxViewHeight/2., c.hh, 1e-9)
}

func TestZoomClampsWidthOnWideScreens(t *testing.T) {
	c := Camera{hw: 8, hh: 8, sw: 10000, sh: 1000}

	c.Zoom(1e6, 5000, 500)
	assert.InDelta(t, maxViewWidth/2., c.hw, 1e-9)
	assert.InDelta(t, c.hw/10, c.hh, 1e-9, "aspect preserved")
}

func TestZoomKeepsAnchorFixed(t *testing.T) {
	c := Camera{hw: 8, hh: 8, x: 1, y: 2, sw: 1000, sh: 1000}
	toWorld := c.ToWorld()
	wx, wy := toWorld.Apply(250, 750)

	c.Zoom(1.5, 250, 750)

	toWorld = c.ToWorld()
	nx, ny := toWorld.Apply(250, 750)
	assert.InDelta(t, wx, nx, 1e-9)
	assert.InDelta(t, wy, ny, 1e-9)
}

func TestLayoutMatchesAspect(t *testing.T) {
	c := Camera{hw: 1, hh: 4}
	w, h := c.Layout(1600, 800)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 800, h)
	assert.InDelta(t, 8, c.hw, 1e-9, "width follows height and aspect")
}
