// Package scene manages the backdrop the weather effect overlays:
// a small ECS world of drifting props (haze patches, dust motes)
// advanced by a perlin flow field each frame.
package scene

// Position is a prop's world-space location.
type Position struct {
	X, Y float32
}

// Drift holds a prop's velocity and how strongly it follows the flow
// field. Response is per-second steering toward the field direction.
type Drift struct {
	VX, VY   float32
	Response float32
}

// Sprite holds the visual attributes the renderer needs. Layer orders
// props back-to-front; Shade is a grey level in [0, 255].
type Sprite struct {
	Radius float32
	Layer  uint8
	Shade  uint8
}
