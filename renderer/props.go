package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/driftline/flurry/camera"
	"github.com/driftline/flurry/scene"
)

// PropRenderer draws the backdrop scene props behind the weather.
type PropRenderer struct {
	layers int
}

// NewPropRenderer creates a prop renderer for the given layer count.
func NewPropRenderer(layers int) *PropRenderer {
	if layers < 1 {
		layers = 1
	}
	return &PropRenderer{layers: layers}
}

// Draw renders the scene back-to-front by layer.
func (r *PropRenderer) Draw(s *scene.Scene, cam *camera.Camera) {
	for layer := 0; layer < r.layers; layer++ {
		want := uint8(layer)
		s.Each(func(pos scene.Position, sprite scene.Sprite) {
			if sprite.Layer != want {
				return
			}
			if !cam.IsVisible(pos.X, pos.Y, sprite.Radius) {
				return
			}
			sx, sy := cam.WorldToScreen(pos.X, pos.Y)
			shade := sprite.Shade
			color := rl.Color{R: shade, G: shade, B: shade + 10, A: 90}
			rl.DrawCircle(int32(sx), int32(sy), sprite.Radius*cam.Zoom, color)
		})
	}
}
