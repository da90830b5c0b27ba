package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/driftline/flurry/weather"
)

// WindowStats holds aggregated simulation statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Counters accumulated during the window
	Ticks        int    `csv:"ticks"`
	DroppedTicks uint64 `csv:"dropped_ticks"`

	// Population state sampled at window end
	Population   int     `csv:"population"`
	MeltingCount int     `csv:"melting"`
	MeltingFrac  float64 `csv:"melting_frac"`

	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`

	FallSpeedP10 float64 `csv:"fall_p10"`
	FallSpeedP50 float64 `csv:"fall_p50"`
	FallSpeedP90 float64 `csv:"fall_p90"`
}

// quantiles returns the p10/p50/p90 of values. Zeroes for an empty
// slice.
func quantiles(values []float64) (p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return p10, p50, p90
}

// meanStd returns the mean and sample standard deviation of values.
func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return mean, std
}

// SampleSnapshot fills the population-derived fields of a WindowStats
// from a particle snapshot.
func SampleSnapshot(stats *WindowStats, particles []weather.Particle) {
	stats.Population = len(particles)
	if len(particles) == 0 {
		return
	}

	radii := make([]float64, len(particles))
	speeds := make([]float64, len(particles))
	melting := 0
	for i, p := range particles {
		radii[i] = p.Radius
		speeds[i] = p.FallSpeed
		if p.Melting {
			melting++
		}
	}

	stats.MeltingCount = melting
	stats.MeltingFrac = float64(melting) / float64(len(particles))
	stats.RadiusMean, stats.RadiusStd = meanStd(radii)
	stats.FallSpeedP10, stats.FallSpeedP50, stats.FallSpeedP90 = quantiles(speeds)
}

// LogStats emits the window to the structured log.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"population", s.Population,
		"melting_frac", s.MeltingFrac,
		"radius_mean", s.RadiusMean,
		"dropped_ticks", s.DroppedTicks,
	)
}
