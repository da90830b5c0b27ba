package scene

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/mlange-42/ark/ecs"
)

// Perlin parameters for the flow field. Two octaves keep the field
// smooth; props should wander, not jitter.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 2
)

// Params configures a scene.
type Params struct {
	Props      int
	Layers     int
	NoiseScale float64
	DriftSpeed float32
	Width      float32
	Height     float32
}

// Scene owns the backdrop prop world.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map3[Position, Drift, Sprite]
	filter *ecs.Filter3[Position, Drift, Sprite]

	noise  *perlin.Perlin
	params Params
	time   float64
	count  int
}

// New creates a scene populated with params.Props drifting props.
func New(params Params, seed int64) *Scene {
	if params.Layers < 1 {
		params.Layers = 1
	}
	world := ecs.NewWorld()
	s := &Scene{
		world:  world,
		mapper: ecs.NewMap3[Position, Drift, Sprite](world),
		filter: ecs.NewFilter3[Position, Drift, Sprite](world),
		noise:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		params: params,
	}
	s.spawnProps(rand.New(rand.NewSource(seed)))
	return s
}

func (s *Scene) spawnProps(rng *rand.Rand) {
	for i := 0; i < s.params.Props; i++ {
		layer := uint8(i % s.params.Layers)
		// Deeper layers are larger, dimmer, and slower to respond.
		depth := float32(layer+1) / float32(s.params.Layers)

		pos := Position{
			X: rng.Float32() * s.params.Width,
			Y: rng.Float32() * s.params.Height,
		}
		drift := Drift{
			Response: 0.5 + depth,
		}
		sprite := Sprite{
			Radius: (20 + rng.Float32()*40) * (1.5 - depth/2),
			Layer:  layer,
			Shade:  uint8(40 + depth*60),
		}
		s.mapper.NewEntity(&pos, &drift, &sprite)
		s.count++
	}
}

// Count returns the number of props in the scene.
func (s *Scene) Count() int {
	return s.count
}

// Advance moves every prop along the flow field by dt seconds. Props
// wrap at the scene edges so the backdrop never empties.
func (s *Scene) Advance(dt float32) {
	s.time += float64(dt)

	query := s.filter.Query()
	for query.Next() {
		pos, drift, _ := query.Get()

		// Sample the flow field; the noise value becomes a heading.
		n := s.noise.Noise2D(
			float64(pos.X)*s.params.NoiseScale,
			float64(pos.Y)*s.params.NoiseScale+s.time*0.05,
		)
		angle := n * 2 * math.Pi

		targetVX := float32(math.Cos(angle)) * s.params.DriftSpeed
		targetVY := float32(math.Sin(angle)) * s.params.DriftSpeed

		// Steer toward the field direction at the prop's response rate.
		k := drift.Response * dt
		if k > 1 {
			k = 1
		}
		drift.VX += (targetVX - drift.VX) * k
		drift.VY += (targetVY - drift.VY) * k

		pos.X += drift.VX * dt
		pos.Y += drift.VY * dt

		pos.X = wrap(pos.X, s.params.Width)
		pos.Y = wrap(pos.Y, s.params.Height)
	}
}

// Each calls fn for every prop. Iteration order is arbitrary but stable
// between calls without structural changes.
func (s *Scene) Each(fn func(Position, Sprite)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, sprite := query.Get()
		fn(*pos, *sprite)
	}
}

// Bounds returns the world-space bounding box over all props, for
// camera framing. ok is false for an empty scene.
func (s *Scene) Bounds() (minX, minY, maxX, maxY float32, ok bool) {
	first := true
	query := s.filter.Query()
	for query.Next() {
		pos, _, sprite := query.Get()
		r := sprite.Radius
		if first {
			minX, maxX = pos.X-r, pos.X+r
			minY, maxY = pos.Y-r, pos.Y+r
			first = false
			continue
		}
		minX = minf(minX, pos.X-r)
		maxX = maxf(maxX, pos.X+r)
		minY = minf(minY, pos.Y-r)
		maxY = maxf(maxY, pos.Y+r)
	}
	return minX, minY, maxX, maxY, !first
}

func wrap(x, size float32) float32 {
	for x < 0 {
		x += size
	}
	for x > size {
		x -= size
	}
	return x
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
