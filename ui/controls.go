// Package ui provides the raygui control surfaces for the runtime.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// WeatherControls is the panel's view of the tunable weather state.
type WeatherControls struct {
	Enabled    bool
	Density    int
	BaseRadius float64
}

// ControlsPanel renders the weather control panel. Slider edits are
// reported through the return value of Draw; the panel itself holds no
// simulation state.
type ControlsPanel struct {
	x, y    int32
	width   int32
	visible bool
}

// NewControlsPanel creates a controls panel at the given position.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Draw renders the panel and returns the (possibly edited) controls
// plus whether anything changed this frame.
func (c *ControlsPanel) Draw(in WeatherControls) (WeatherControls, bool) {
	if !c.visible {
		return in, false
	}

	out := in
	changed := false

	const padding = int32(10)
	const lineHeight = int32(22)
	panelHeight := lineHeight*8 + padding*3

	rl.DrawRectangle(c.x, c.y, c.width, panelHeight, rl.Color{R: 20, G: 20, B: 30, A: 220})
	rl.DrawRectangleLines(c.x, c.y, c.width, panelHeight, rl.Gray)

	x := float32(c.x + padding)
	y := c.y + padding
	sliderW := float32(c.width - padding*2 - 50)

	rl.DrawText("Weather", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	label := "Enable"
	if in.Enabled {
		label = "Disable"
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: 90, Height: 20}, label) {
		out.Enabled = !in.Enabled
		changed = true
	}
	y += lineHeight + 6

	rl.DrawText("Density", c.x+padding, y, 14, rl.LightGray)
	y += lineHeight - 4
	newDensity := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: sliderW, Height: 18},
		"0", "2000",
		float32(in.Density), 0, 2000,
	)
	rl.DrawText(fmt.Sprintf("%d", in.Density), int32(x+sliderW)+8, y, 14, rl.LightGray)
	if int(newDensity) != in.Density {
		out.Density = int(newDensity)
		changed = true
	}
	y += lineHeight + 6

	rl.DrawText("Particle size", c.x+padding, y, 14, rl.LightGray)
	y += lineHeight - 4
	newRadius := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: sliderW, Height: 18},
		"1", "10",
		float32(in.BaseRadius), 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%.1f", in.BaseRadius), int32(x+sliderW)+8, y, 14, rl.LightGray)
	if float64(newRadius) != in.BaseRadius {
		out.BaseRadius = float64(newRadius)
		changed = true
	}

	return out, changed
}
