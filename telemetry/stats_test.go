package telemetry

import (
	"math"
	"testing"

	"github.com/driftline/flurry/weather"
)

func TestQuantiles(t *testing.T) {
	tests := []struct {
		name             string
		values           []float64
		wantP10          float64
		wantP50, wantP90 float64
	}{
		{"empty", []float64{}, 0, 0, 0},
		{"single element", []float64{5}, 5, 5, 5},
		{"one through ten", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 1, 5, 9},
		{"unsorted input", []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}, 1, 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p10, p50, p90 := quantiles(tt.values)
			if p10 != tt.wantP10 || p50 != tt.wantP50 || p90 != tt.wantP90 {
				t.Errorf("quantiles(%v) = %v/%v/%v, want %v/%v/%v",
					tt.values, p10, p50, p90, tt.wantP10, tt.wantP50, tt.wantP90)
			}
		})
	}
}

func TestMeanStd(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, std := meanStd(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.0277", std)
	}

	mean, std = meanStd(nil)
	if mean != 0 || std != 0 {
		t.Error("empty slice should return zeros")
	}
}

func TestSampleSnapshot(t *testing.T) {
	particles := []weather.Particle{
		{Radius: 2, FallSpeed: 1, Melting: true},
		{Radius: 3, FallSpeed: 2},
		{Radius: 4, FallSpeed: 3},
		{Radius: 3, FallSpeed: 2, Melting: true},
	}

	var stats WindowStats
	SampleSnapshot(&stats, particles)

	if stats.Population != 4 {
		t.Errorf("population = %d, want 4", stats.Population)
	}
	if stats.MeltingCount != 2 {
		t.Errorf("melting count = %d, want 2", stats.MeltingCount)
	}
	if math.Abs(stats.MeltingFrac-0.5) > 0.001 {
		t.Errorf("melting frac = %v, want 0.5", stats.MeltingFrac)
	}
	if math.Abs(stats.RadiusMean-3.0) > 0.001 {
		t.Errorf("radius mean = %v, want 3.0", stats.RadiusMean)
	}
	if stats.FallSpeedP50 != 2 {
		t.Errorf("fall p50 = %v, want 2", stats.FallSpeedP50)
	}
}

func TestSampleSnapshotEmpty(t *testing.T) {
	var stats WindowStats
	SampleSnapshot(&stats, nil)

	if stats.Population != 0 || stats.MeltingFrac != 0 || stats.RadiusMean != 0 {
		t.Errorf("empty snapshot produced non-zero stats: %+v", stats)
	}
}

func TestCollectorWindowing(t *testing.T) {
	dt := 1.0 / 60.0
	c := NewCollector(1.0, dt) // 60-tick windows

	var tick int64
	for tick = 1; tick <= 59; tick++ {
		c.RecordTick()
		if c.WindowDone(tick) {
			t.Fatalf("window closed early at tick %d", tick)
		}
	}

	c.RecordTick()
	if !c.WindowDone(60) {
		t.Fatal("window not closed at tick 60")
	}

	c.RecordDropTotal(3)
	stats := c.Flush(60, []weather.Particle{{Radius: 3, FallSpeed: 2}})

	if stats.Ticks != 60 {
		t.Errorf("window ticks = %d, want 60", stats.Ticks)
	}
	if stats.DroppedTicks != 3 {
		t.Errorf("dropped ticks = %d, want 3", stats.DroppedTicks)
	}
	if stats.Population != 1 {
		t.Errorf("population = %d, want 1", stats.Population)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 0.001 {
		t.Errorf("sim time = %v, want 1.0", stats.SimTimeSec)
	}

	// Flush resets counters; the drop total is cumulative so an
	// unchanged total adds nothing to the next window.
	c.RecordTick()
	c.RecordDropTotal(3)
	next := c.Flush(120, nil)
	if next.Ticks != 1 {
		t.Errorf("next window ticks = %d, want 1", next.Ticks)
	}
	if next.DroppedTicks != 0 {
		t.Errorf("next window drops = %d, want 0", next.DroppedTicks)
	}
	if next.WindowStartTick != 60 {
		t.Errorf("next window start = %d, want 60", next.WindowStartTick)
	}
}
