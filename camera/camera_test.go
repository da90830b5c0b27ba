package camera

import (
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Should be centered on world
	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected camera at (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(1280, 720)
	if !approxEqual(sx, 640) || !approxEqual(sy, 360) {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !approxEqual(sx, tc.sx) || !approxEqual(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestZoomScalesDistance(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(2.0)

	// At zoom 2, one world unit spans two screen pixels
	sx1, _ := cam.WorldToScreen(cam.X+1, cam.Y)
	sx0, _ := cam.WorldToScreen(cam.X, cam.Y)
	if !approxEqual(sx1-sx0, 2.0) {
		t.Errorf("zoom 2x: 1 world unit = %f screen pixels, want 2.0", sx1-sx0)
	}
}

func TestPanClampsToWorld(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Panning far past the left edge must stop where the view still
	// fits inside the world.
	cam.Pan(-100000, 0)
	minX, _, _, _ := cam.VisibleWorldBounds()
	if minX < 0 {
		t.Errorf("view extends past world left edge: minX = %f", minX)
	}
	if !approxEqual(cam.X, 640) {
		t.Errorf("camera x = %f, want clamped to 640", cam.X)
	}
}

func TestFitBounds(t *testing.T) {
	tests := []struct {
		name                   string
		minX, minY, maxX, maxY float32
		margin                 float32
		wantCX, wantCY         float32
		wantZoom               float32
	}{
		{"exact viewport", 0, 0, 1280, 720, 0, 640, 360, 1.0},
		{"half-size content", 0, 0, 640, 360, 0, 320, 180, 2.0},
		{"wide content limits zoom", 0, 0, 2560, 720, 0, 1280, 360, 0.5},
		{"degenerate bounds", 100, 100, 100, 100, 0, 100, 100, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy, zoom := FitBounds(tt.minX, tt.minY, tt.maxX, tt.maxY, 1280, 720, tt.margin)
			if !approxEqual(cx, tt.wantCX) || !approxEqual(cy, tt.wantCY) {
				t.Errorf("center = (%f, %f), want (%f, %f)", cx, cy, tt.wantCX, tt.wantCY)
			}
			if !approxEqual(zoom, tt.wantZoom) {
				t.Errorf("zoom = %f, want %f", zoom, tt.wantZoom)
			}
		})
	}
}

func TestFrameSnapsToBounds(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.Frame(0, 0, 640, 360, 0)

	if !approxEqual(cam.X, 320) || !approxEqual(cam.Y, 180) {
		t.Errorf("camera at (%f, %f), want (320, 180)", cam.X, cam.Y)
	}
	if !approxEqual(cam.Zoom, 2.0) {
		t.Errorf("zoom = %f, want 2.0", cam.Zoom)
	}
}

func TestFrameAnimatedConverges(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.FrameAnimated(0, 0, 640, 360, 0, 0.5)

	if !cam.Scrolling() {
		t.Fatal("no scroll animation after FrameAnimated")
	}

	// Advance well past the duration; the tween must land exactly on
	// the target and finish.
	for i := 0; i < 60; i++ {
		cam.Update(1.0 / 60.0)
	}

	if cam.Scrolling() {
		t.Error("scroll animation still active after duration elapsed")
	}
	if !approxEqual(cam.X, 320) || !approxEqual(cam.Y, 180) {
		t.Errorf("camera at (%f, %f), want (320, 180)", cam.X, cam.Y)
	}
	if !approxEqual(cam.Zoom, 2.0) {
		t.Errorf("zoom = %f, want 2.0", cam.Zoom)
	}
}

func TestPanCancelsScroll(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.FrameAnimated(0, 0, 640, 360, 0, 1.0)
	cam.Pan(10, 0)

	if cam.Scrolling() {
		t.Error("pan did not cancel the scroll animation")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	if !cam.IsVisible(1280, 720, 5) {
		t.Error("camera center not visible")
	}
	if cam.IsVisible(0, 0, 5) {
		t.Error("far corner visible at zoom 1 centered on world")
	}
	// Just off the right edge but within the radius margin
	if !cam.IsVisible(1280+645, 720, 10) {
		t.Error("circle straddling right edge culled")
	}
}
