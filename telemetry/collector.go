package telemetry

import "github.com/driftline/flurry/weather"

// Collector accumulates events within tick windows and produces
// WindowStats at window boundaries.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	windowStartTick int64

	// Counters for the current window
	ticks         int
	lastDropTotal uint64
	windowDrops   uint64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick.
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTick records one completed simulation tick.
func (c *Collector) RecordTick() {
	c.ticks++
}

// RecordDropTotal updates the running dropped-tick total from the
// controller; the collector derives the per-window delta.
func (c *Collector) RecordDropTotal(total uint64) {
	if total > c.lastDropTotal {
		c.windowDrops += total - c.lastDropTotal
		c.lastDropTotal = total
	}
}

// WindowDone reports whether the current window ends at the given tick.
func (c *Collector) WindowDone(tick int64) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// Flush closes the current window: it samples the given snapshot,
// returns the window's stats, and resets the counters for the next
// window.
func (c *Collector) Flush(tick int64, particles []weather.Particle) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * c.dt,
		Ticks:           c.ticks,
		DroppedTicks:    c.windowDrops,
	}
	SampleSnapshot(&stats, particles)

	c.windowStartTick = tick
	c.ticks = 0
	c.windowDrops = 0

	return stats
}
