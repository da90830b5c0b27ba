// Package game wires the weather simulation, backdrop scene, camera,
// telemetry, and UI into one frame loop.
package game

import (
	"log/slog"

	"github.com/driftline/flurry/camera"
	"github.com/driftline/flurry/config"
	"github.com/driftline/flurry/renderer"
	"github.com/driftline/flurry/scene"
	"github.com/driftline/flurry/telemetry"
	"github.com/driftline/flurry/ui"
	"github.com/driftline/flurry/weather"
)

// frameMargin is the world-unit padding applied when framing the scene.
const frameMargin = 40

// Options configures a Game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game holds the complete runtime state.
type Game struct {
	worker *weather.Worker
	ctrl   *weather.Controller

	backdrop *scene.Scene
	cam      *camera.Camera

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	background *renderer.BackgroundRenderer
	props      *renderer.PropRenderer
	flakes     *renderer.WeatherRenderer
	controls   *ui.ControlsPanel

	// snapshot is the particle state drawn this frame; replaced only
	// when the controller surfaces a newer one.
	snapshot []weather.Particle
	state    ui.WeatherControls

	tick     int64
	dt       float32
	logStats bool

	width, height float32
}

// NewGameWithOptions creates a game instance from the loaded config.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	width := cfg.Derived.ScreenW32
	height := cfg.Derived.ScreenH32
	dt := float32(1.0) / float32(cfg.Screen.TargetFPS)

	worker := weather.NewWorker(tuningFromConfig(cfg), weather.NewSource(opts.Seed))
	ctrl := weather.NewController(worker)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
		output = nil
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	g := &Game{
		worker:    worker,
		ctrl:      ctrl,
		backdrop:  scene.New(sceneParamsFromConfig(cfg), opts.Seed),
		cam:       camera.New(width, height, float32(cfg.Screen.Width), float32(cfg.Screen.Height)),
		collector: telemetry.NewCollector(statsWindow, float64(dt)),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    output,
		controls:  ui.NewControlsPanel(10, 10, 240),
		dt:        dt,
		logStats:  opts.LogStats,
		width:     width,
		height:    height,
		state: ui.WeatherControls{
			Enabled:    true,
			Density:    cfg.Weather.Density,
			BaseRadius: cfg.Weather.BaseRadius,
		},
	}
	g.cam.MaxZoom = float32(cfg.Camera.MaxZoom)

	if !opts.Headless {
		g.background = renderer.NewBackgroundRenderer(int32(width), int32(height))
		g.props = renderer.NewPropRenderer(cfg.Scene.Layers)
		g.flakes = renderer.NewWeatherRenderer()
	}

	ctrl.Start(weather.Config{
		CanvasWidth:  float64(width),
		CanvasHeight: float64(height),
		Density:      cfg.Weather.Density,
		BaseRadius:   cfg.Weather.BaseRadius,
	})

	return g
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// Unload releases the worker goroutine and output files.
func (g *Game) Unload() {
	g.ctrl.Stop()
	g.worker.Close()
	if err := g.output.Close(); err != nil {
		slog.Warn("closing telemetry output", "error", err)
	}
}

// applyControls reconciles panel edits with the controller.
func (g *Game) applyControls(next ui.WeatherControls) {
	if next.Enabled != g.state.Enabled {
		if next.Enabled {
			g.ctrl.Start(weather.Config{
				CanvasWidth:  float64(g.width),
				CanvasHeight: float64(g.height),
				Density:      next.Density,
				BaseRadius:   next.BaseRadius,
			})
		} else {
			g.ctrl.Stop()
			g.snapshot = nil
		}
	} else if next.Density != g.state.Density || next.BaseRadius != g.state.BaseRadius {
		g.ctrl.SetDensity(next.Density, next.BaseRadius)
	}
	g.state = next
}
