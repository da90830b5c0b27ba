package game

import (
	"log/slog"

	"github.com/driftline/flurry/telemetry"
)

// Update advances one frame: input, simulation tick, scene drift, and
// telemetry. Rendering happens separately in Draw.
func (g *Game) Update() {
	g.handleInput()
	g.step()
}

// UpdateHeadless advances one frame without any input or rendering.
func (g *Game) UpdateHeadless() {
	g.step()
}

// step is the shared per-frame simulation work.
func (g *Game) step() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseWeather)
	g.ctrl.Tick(float64(g.width), float64(g.height))
	if snap := g.ctrl.Snapshot(); snap != nil {
		g.snapshot = snap
	}

	g.perf.StartPhase(telemetry.PhaseScene)
	g.backdrop.Advance(g.dt)
	g.cam.Update(g.dt)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.collector.RecordTick()
	g.collector.RecordDropTotal(g.ctrl.DroppedTicks())
	if g.collector.WindowDone(g.tick) {
		g.flushWindow()
	}

	g.perf.EndTick()
}

// flushWindow closes the current stats window and writes it out.
func (g *Game) flushWindow() {
	stats := g.collector.Flush(g.tick, g.snapshot)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}
	if err := g.output.WriteWindow(stats); err != nil {
		slog.Warn("writing weather stats", "error", err)
	}
	if err := g.output.WritePerf(perfStats, g.tick); err != nil {
		slog.Warn("writing perf stats", "error", err)
	}
}
