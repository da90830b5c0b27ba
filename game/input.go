package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/driftline/flurry/config"
)

// panSpeed is the camera pan rate in screen pixels per frame.
const panSpeed = 8

// handleInput processes keyboard and mouse input for the frame.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}

	// Toggle the weather session without touching the panel
	if rl.IsKeyPressed(rl.KeySpace) {
		next := g.state
		next.Enabled = !next.Enabled
		g.applyControls(next)
	}

	// Animated framing of the backdrop content
	if rl.IsKeyPressed(rl.KeyF) {
		if minX, minY, maxX, maxY, ok := g.backdrop.Bounds(); ok {
			g.cam.FrameAnimated(minX, minY, maxX, maxY, frameMargin,
				float32(config.Cfg().Camera.ScrollDuration))
		}
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
	}

	// Arrow key panning
	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, -panSpeed)
	}

	// Zoom controls: mouse wheel or +/- keys
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.cam.ZoomBy(1.0 + wheelMove*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}

	// Right-drag panning
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.cam.Pan(-delta.X, -delta.Y)
	}
}
