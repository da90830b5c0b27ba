package scene

import "testing"

func testParams() Params {
	return Params{
		Props:      24,
		Layers:     3,
		NoiseScale: 0.004,
		DriftSpeed: 12,
		Width:      1280,
		Height:     720,
	}
}

func TestNewSpawnsAllProps(t *testing.T) {
	s := New(testParams(), 1)

	if s.Count() != 24 {
		t.Fatalf("prop count = %d, want 24", s.Count())
	}

	layers := make(map[uint8]int)
	seen := 0
	s.Each(func(pos Position, sprite Sprite) {
		seen++
		layers[sprite.Layer]++
		if pos.X < 0 || pos.X > 1280 || pos.Y < 0 || pos.Y > 720 {
			t.Errorf("prop spawned off scene at (%g, %g)", pos.X, pos.Y)
		}
		if sprite.Radius <= 0 {
			t.Errorf("prop has non-positive radius %g", sprite.Radius)
		}
	})
	if seen != 24 {
		t.Errorf("Each visited %d props, want 24", seen)
	}
	if len(layers) != 3 {
		t.Errorf("props spread over %d layers, want 3", len(layers))
	}
}

func TestAdvanceKeepsPropsInBounds(t *testing.T) {
	s := New(testParams(), 2)

	for i := 0; i < 600; i++ {
		s.Advance(1.0 / 60.0)
	}

	s.Each(func(pos Position, _ Sprite) {
		if pos.X < 0 || pos.X > 1280 || pos.Y < 0 || pos.Y > 720 {
			t.Errorf("prop drifted out of bounds to (%g, %g)", pos.X, pos.Y)
		}
	})
}

func TestAdvanceMovesProps(t *testing.T) {
	s := New(testParams(), 3)

	type pt struct{ x, y float32 }
	var before []pt
	s.Each(func(pos Position, _ Sprite) {
		before = append(before, pt{pos.X, pos.Y})
	})

	for i := 0; i < 120; i++ {
		s.Advance(1.0 / 60.0)
	}

	moved := 0
	i := 0
	s.Each(func(pos Position, _ Sprite) {
		if pos.X != before[i].x || pos.Y != before[i].y {
			moved++
		}
		i++
	})
	if moved == 0 {
		t.Error("no prop moved after two seconds of drift")
	}
}

func TestBounds(t *testing.T) {
	s := New(testParams(), 4)

	minX, minY, maxX, maxY, ok := s.Bounds()
	if !ok {
		t.Fatal("Bounds reported empty scene")
	}
	if minX >= maxX || minY >= maxY {
		t.Errorf("degenerate bounds (%g, %g)-(%g, %g)", minX, minY, maxX, maxY)
	}

	// Every prop center must sit inside the reported box.
	s.Each(func(pos Position, _ Sprite) {
		if pos.X < minX || pos.X > maxX || pos.Y < minY || pos.Y > maxY {
			t.Errorf("prop at (%g, %g) outside bounds (%g, %g)-(%g, %g)",
				pos.X, pos.Y, minX, minY, maxX, maxY)
		}
	})

	empty := New(Params{Layers: 1, Width: 100, Height: 100}, 5)
	if _, _, _, _, ok := empty.Bounds(); ok {
		t.Error("empty scene reported non-empty bounds")
	}
}
