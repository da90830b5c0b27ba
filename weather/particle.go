// Package weather implements the off-main-thread falling-particle
// simulation. A Worker goroutine owns the particle population and
// advances it one tick per update command; a Controller on the render
// thread drives the worker over a message channel and holds the last
// snapshot for drawing. No particle state is shared across the
// boundary - every snapshot is an independent copy.
package weather

import (
	"math"
	"math/rand"
)

// spawnY is the vertical position particles respawn at, just above the
// canvas so they enter the frame already falling.
const spawnY = -10.0

// swayDirection is the global horizontal bias of the sway oscillation.
// One sign for the whole population; individual variation comes from
// per-particle amplitude and phase.
const swayDirection = 1.0

// Source yields uniformly distributed values in [0, 1). *rand.Rand
// satisfies it directly; tests inject a fixed-seed instance for
// deterministic replay.
type Source interface {
	Float64() float64
}

// NewSource returns a production random source. Seed 0 is allowed and
// gives a fixed (but arbitrary) stream; callers wanting wall-clock
// variation pass time.Now().UnixNano().
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Particle is one falling element, in canvas pixel space.
type Particle struct {
	X, Y float64

	// Radius is the current visual size; it only shrinks once melting
	// starts and is restored to BaseRadius on reset. It is never <= 0
	// in a snapshot.
	Radius     float64
	BaseRadius float64

	// Per-lifetime constants, rolled once at spawn/reset.
	FallSpeed     float64
	SwayAmplitude float64
	SwayPhase     float64
	DriftRate     float64
	Opacity       float64

	// MeltStartY is the y coordinate melting latches at; MeltRate is
	// the per-tick radius decay once melting. Both are re-rolled on
	// reset only, so a melt in progress keeps its decay speed.
	MeltStartY float64
	MeltRate   float64
	Melting    bool
}

// Config mirrors the controller-owned simulation parameters into the
// worker on init and density changes.
type Config struct {
	CanvasWidth  float64
	CanvasHeight float64
	Density      int
	BaseRadius   float64
}

// Tuning holds the per-particle roll ranges. Constant for a worker's
// lifetime; density and base radius are the only live-tunable knobs.
type Tuning struct {
	FallSpeedMin     float64
	FallSpeedMax     float64
	SwayAmplitudeMax float64
	SwayFrequency    float64
	DriftRateMax     float64
	Opacity          float64
	MeltRateMin      float64
	MeltRateMax      float64
	MeltZoneStart    float64
}

// DefaultTuning returns the stock look: slow fall, gentle sway, melt in
// the lower third of the canvas.
func DefaultTuning() Tuning {
	return Tuning{
		FallSpeedMin:     1.0,
		FallSpeedMax:     3.0,
		SwayAmplitudeMax: 1.5,
		SwayFrequency:    0.02,
		DriftRateMax:     0.4,
		Opacity:          0.85,
		MeltRateMin:      0.02,
		MeltRateMax:      0.08,
		MeltZoneStart:    0.65,
	}
}

// rollRange returns a uniform value in [min, max).
func rollRange(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// rollMeltStart picks the melt threshold inside the configured melt
// zone of the canvas.
func (t Tuning) rollMeltStart(src Source, canvasHeight float64) float64 {
	return canvasHeight * (t.MeltZoneStart + src.Float64()*(1-t.MeltZoneStart))
}

// newParticle rolls a fresh particle spread anywhere on the canvas.
// Used only for initial population fill; subsequent lifetimes start at
// spawnY via reset.
func newParticle(cfg Config, t Tuning, src Source) Particle {
	p := Particle{
		X:             src.Float64() * cfg.CanvasWidth,
		Y:             src.Float64() * cfg.CanvasHeight,
		Radius:        cfg.BaseRadius,
		BaseRadius:    cfg.BaseRadius,
		FallSpeed:     rollRange(src, t.FallSpeedMin, t.FallSpeedMax),
		SwayAmplitude: src.Float64() * t.SwayAmplitudeMax,
		SwayPhase:     src.Float64() * 2 * math.Pi / t.SwayFrequency,
		DriftRate:     (src.Float64()*2 - 1) * t.DriftRateMax,
		Opacity:       t.Opacity,
		MeltRate:      rollRange(src, t.MeltRateMin, t.MeltRateMax),
	}
	p.MeltStartY = t.rollMeltStart(src, cfg.CanvasHeight)
	return p
}

// reset respawns a particle above the canvas with a new x, restored
// radius, and freshly rolled melt threshold and rate. Fall, sway, and
// drift constants persist for the particle's whole population lifetime.
func (p *Particle) reset(canvasWidth, canvasHeight float64, t Tuning, src Source) {
	p.X = src.Float64() * canvasWidth
	p.Y = spawnY
	p.Radius = p.BaseRadius
	p.Melting = false
	p.MeltStartY = t.rollMeltStart(src, canvasHeight)
	p.MeltRate = rollRange(src, t.MeltRateMin, t.MeltRateMax)
}

// newPopulation builds exactly cfg.Density particles. Density or radius
// changes regenerate the whole population rather than patching it; the
// one-frame discontinuity is the accepted trade for never observing a
// partially resized population.
func newPopulation(cfg Config, t Tuning, src Source) []Particle {
	pop := make([]Particle, cfg.Density)
	for i := range pop {
		pop[i] = newParticle(cfg, t, src)
	}
	return pop
}
