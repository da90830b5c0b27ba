package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the frame with a vertical dusk gradient.
type BackgroundRenderer struct {
	width, height int32
	top, bottom   rl.Color
}

// NewBackgroundRenderer creates a background renderer for the screen size.
func NewBackgroundRenderer(width, height int32) *BackgroundRenderer {
	return &BackgroundRenderer{
		width:  width,
		height: height,
		top:    rl.Color{R: 18, G: 24, B: 44, A: 255},
		bottom: rl.Color{R: 48, G: 58, B: 86, A: 255},
	}
}

// Resize updates the fill dimensions.
func (b *BackgroundRenderer) Resize(width, height int32) {
	b.width = width
	b.height = height
}

// Draw fills the screen.
func (b *BackgroundRenderer) Draw() {
	rl.DrawRectangleGradientV(0, 0, b.width, b.height, b.top, b.bottom)
}
