package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/driftline/flurry/camera"
	"github.com/driftline/flurry/weather"
)

// WeatherRenderer draws the particle snapshot held by the controller.
type WeatherRenderer struct{}

// NewWeatherRenderer creates a new weather renderer.
func NewWeatherRenderer() *WeatherRenderer {
	return &WeatherRenderer{}
}

// Draw renders all particles through the camera. The snapshot contract
// guarantees every radius is positive; opacity is baked per particle.
func (r *WeatherRenderer) Draw(particles []weather.Particle, cam *camera.Camera) {
	for i := range particles {
		p := &particles[i]

		wx := float32(p.X)
		wy := float32(p.Y)
		radius := float32(p.Radius) * cam.Zoom

		if !cam.IsVisible(wx, wy, float32(p.Radius)) {
			continue
		}

		sx, sy := cam.WorldToScreen(wx, wy)

		alpha := p.Opacity
		if alpha > 1 {
			alpha = 1
		}
		color := rl.Color{R: 235, G: 240, B: 250, A: uint8(alpha * 255)}

		rl.DrawCircle(int32(sx), int32(sy), radius, color)
	}
}
