// Package camera provides a 2D camera system for viewport control.
package camera

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds the active tweens for an animated framing move.
type scrollAnim struct {
	tweenX    *gween.Tween
	tweenY    *gween.Tween
	tweenZoom *gween.Tween
}

// Camera controls the viewport into the scene world. Supports pan,
// zoom, bounds-clamped positioning, and animated frame-to-content
// moves.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World dimensions (camera position is clamped so the view stays
	// inside them)
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	scroll *scrollAnim
}

// New creates a camera centered on the world with 1:1 zoom.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	// Minimum zoom keeps the viewport from exceeding the world:
	// at zoom Z the visible area is (viewportW/Z, viewportH/Z).
	minZoomX := viewportW / worldW
	minZoomY := viewportH / worldH
	minZoom := minZoomX
	if minZoomY > minZoom {
		minZoom = minZoomY
	}

	return &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MinZoom:   minZoom,
		MaxZoom:   4.0,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	dx := wx - c.X
	dy := wy - c.Y

	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius

	return absf(dx) <= halfW && absf(dy) <= halfH
}

// FitBounds computes the center and zoom that frame the given
// world-space bounds inside a viewport with the given margin in world
// units. Pure; it does not move the camera. Degenerate bounds fall
// back to zoom 1 centered on the bounds.
func FitBounds(minX, minY, maxX, maxY, viewportW, viewportH, margin float32) (cx, cy, zoom float32) {
	cx = (minX + maxX) / 2
	cy = (minY + maxY) / 2

	w := maxX - minX + 2*margin
	h := maxY - minY + 2*margin
	if w <= 0 || h <= 0 {
		return cx, cy, 1.0
	}

	zoomX := viewportW / w
	zoomY := viewportH / h
	zoom = zoomX
	if zoomY < zoom {
		zoom = zoomY
	}
	return cx, cy, zoom
}

// Frame snaps the camera to fit the given bounds, clamped to the
// camera's zoom and world constraints.
func (c *Camera) Frame(minX, minY, maxX, maxY, margin float32) {
	cx, cy, zoom := FitBounds(minX, minY, maxX, maxY, c.ViewportW, c.ViewportH, margin)
	c.scroll = nil
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.X = cx
	c.Y = cy
	c.clampToWorld()
}

// FrameAnimated tweens the camera to fit the given bounds over the
// given duration in seconds. Call Update each frame to advance.
func (c *Camera) FrameAnimated(minX, minY, maxX, maxY, margin, duration float32) {
	cx, cy, zoom := FitBounds(minX, minY, maxX, maxY, c.ViewportW, c.ViewportH, margin)
	zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.scroll = &scrollAnim{
		tweenX:    gween.New(c.X, cx, duration, ease.OutQuad),
		tweenY:    gween.New(c.Y, cy, duration, ease.OutQuad),
		tweenZoom: gween.New(c.Zoom, zoom, duration, ease.OutQuad),
	}
}

// Update advances any active framing animation. dt is in seconds.
func (c *Camera) Update(dt float32) {
	if c.scroll == nil {
		return
	}
	x, doneX := c.scroll.tweenX.Update(dt)
	y, doneY := c.scroll.tweenY.Update(dt)
	z, doneZ := c.scroll.tweenZoom.Update(dt)
	c.X = x
	c.Y = y
	c.Zoom = z
	c.clampToWorld()
	if doneX && doneY && doneZ {
		c.scroll = nil
	}
}

// Scrolling reports whether a framing animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	minZoomX := viewportW / c.WorldW
	minZoomY := viewportH / c.WorldH
	c.MinZoom = minZoomX
	if minZoomY > c.MinZoom {
		c.MinZoom = minZoomY
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampToWorld()
}

// Pan moves the camera by the given delta in screen pixels. Cancels an
// active framing animation.
func (c *Camera) Pan(dx, dy float32) {
	c.scroll = nil
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampToWorld()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampToWorld()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.scroll = nil
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = 1.0
	c.clampToWorld()
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible
// area as (minX, minY, maxX, maxY).
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clampToWorld keeps the visible area inside world bounds. When the
// view is wider than the world on an axis, the camera centers on it.
func (c *Camera) clampToWorld() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	c.X = clampAxis(c.X, halfW, c.WorldW)
	c.Y = clampAxis(c.Y, halfH, c.WorldH)
}

func clampAxis(center, half, size float32) float32 {
	if 2*half >= size {
		return size / 2
	}
	return clamp(center, half, size-half)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
