package geometry

import (
	"math"

	"asciidraw/core"
)

// ScreenPoint is a position in screen pixels, before the camera is applied.
type ScreenPoint struct {
	X, Y float64
}

// ZoomLimits bounds the camera zoom factor.
type ZoomLimits struct {
	Min, Max float64
}

var (
	// DefaultZoomLimits is the range used by the zoom tool.
	DefaultZoomLimits = ZoomLimits{Min: 0.1, Max: 10}
	// LegacyZoomLimits is the wider range older documents were edited with.
	LegacyZoomLimits = ZoomLimits{Min: 0.01, Max: 100}
)

// Camera is a world-space pan offset plus a multiplicative zoom.
//
//	screen = (world - offset) * zoom
//	world  = screen / zoom + offset
type Camera struct {
	X, Y   float64
	Zoom   float64
	Limits ZoomLimits
}

// NewCamera returns a camera at the origin with zoom 1.
func NewCamera() *Camera {
	return &Camera{Zoom: 1, Limits: DefaultZoomLimits}
}

// ScreenToWorld applies the inverse camera transform.
func (c *Camera) ScreenToWorld(s ScreenPoint) core.WorldPoint {
	return core.WorldPoint{
		X: s.X/c.Zoom + c.X,
		Y: s.Y/c.Zoom + c.Y,
	}
}

// WorldToScreen applies the camera transform.
func (c *Camera) WorldToScreen(w core.WorldPoint) ScreenPoint {
	return ScreenPoint{
		X: (w.X - c.X) * c.Zoom,
		Y: (w.Y - c.Y) * c.Zoom,
	}
}

// ScreenToGrid converts a screen position straight to its grid cell.
func (c *Camera) ScreenToGrid(s ScreenPoint) core.Point {
	return WorldToGrid(c.ScreenToWorld(s))
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// SetZoom sets the zoom factor, clamped to the camera limits.
func (c *Camera) SetZoom(z float64) {
	if math.IsNaN(z) || z <= 0 {
		return
	}
	c.Zoom = Clamp(z, c.Limits.Min, c.Limits.Max)
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the screen position s fixed on screen.
func (c *Camera) ZoomAt(s ScreenPoint, factor float64) {
	if math.IsNaN(factor) || factor <= 0 {
		return
	}
	anchor := c.ScreenToWorld(s)
	c.SetZoom(c.Zoom * factor)
	c.X = anchor.X - s.X/c.Zoom
	c.Y = anchor.Y - s.Y/c.Zoom
}

// ZoomAtWorld zooms about the current screen position of world point w.
func (c *Camera) ZoomAtWorld(w core.WorldPoint, factor float64) {
	c.ZoomAt(c.WorldToScreen(w), factor)
}

// VisibleGrid returns the grid cells covered by a screen of the given pixel
// size.
func (c *Camera) VisibleGrid(width, height float64) core.Bounds {
	tl := c.ScreenToGrid(ScreenPoint{})
	br := c.ScreenToGrid(ScreenPoint{X: width - 1e-9, Y: height - 1e-9})
	return core.BoundsOf(tl, br)
}
