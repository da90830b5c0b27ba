package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Weather.Density != 400 {
		t.Errorf("density = %d, want 400", cfg.Weather.Density)
	}
	if cfg.Derived.ScreenW32 != 1280 || cfg.Derived.ScreenH32 != 720 {
		t.Errorf("derived screen = %gx%g, want 1280x720", cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
	}
}

func TestLoadUserOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	user := "weather:\n  density: 1200\n"
	if err := os.WriteFile(path, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}

	if cfg.Weather.Density != 1200 {
		t.Errorf("density = %d, want user override 1200", cfg.Weather.Density)
	}
	// Untouched fields keep their defaults
	if cfg.Weather.BaseRadius != 3.0 {
		t.Errorf("base radius = %g, want default 3.0", cfg.Weather.BaseRadius)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative density", "weather:\n  density: -1\n"},
		{"zero radius", "weather:\n  base_radius: 0\n"},
		{"inverted fall range", "weather:\n  fall_speed_min: 3\n  fall_speed_max: 1\n"},
		{"melt zone out of range", "weather:\n  melt_zone_start: 1.5\n"},
		{"opacity out of range", "weather:\n  opacity: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
