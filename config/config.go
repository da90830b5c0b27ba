// Package config provides configuration loading and access for the runtime.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Weather   WeatherConfig   `yaml:"weather"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WeatherConfig holds weather-simulation parameters. Density and base
// radius feed the worker's population; the rest are per-particle roll
// ranges applied at spawn and reset.
type WeatherConfig struct {
	Density    int     `yaml:"density"`     // target particle count
	BaseRadius float64 `yaml:"base_radius"` // nominal particle size in pixels

	FallSpeedMin     float64 `yaml:"fall_speed_min"`     // px per tick
	FallSpeedMax     float64 `yaml:"fall_speed_max"`     // px per tick
	SwayAmplitudeMax float64 `yaml:"sway_amplitude_max"` // px per tick of horizontal oscillation
	SwayFrequency    float64 `yaml:"sway_frequency"`     // oscillation frequency keyed by y
	DriftRateMax     float64 `yaml:"drift_rate_max"`     // horizontal bias, scaled by fall speed
	Opacity          float64 `yaml:"opacity"`            // population-wide alpha [0,1]
	MeltRateMin      float64 `yaml:"melt_rate_min"`      // radius decay per tick
	MeltRateMax      float64 `yaml:"melt_rate_max"`      // radius decay per tick
	MeltZoneStart    float64 `yaml:"melt_zone_start"`    // fraction of canvas height where melt can begin
}

// SceneConfig holds backdrop scene parameters.
type SceneConfig struct {
	Props      int     `yaml:"props"`       // number of drifting backdrop props
	Layers     int     `yaml:"layers"`      // parallax depth layers
	NoiseScale float64 `yaml:"noise_scale"` // flow-noise spatial frequency
	DriftSpeed float64 `yaml:"drift_speed"` // max prop speed in px/s
}

// CameraConfig holds viewport settings.
type CameraConfig struct {
	MaxZoom        float64 `yaml:"max_zoom"`
	ScrollDuration float64 `yaml:"scroll_duration"` // seconds for animated framing
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects parameter combinations the simulation cannot run with.
func (c *Config) validate() error {
	w := &c.Weather
	if w.Density < 0 {
		return fmt.Errorf("weather.density must be >= 0, got %d", w.Density)
	}
	if w.BaseRadius <= 0 {
		return fmt.Errorf("weather.base_radius must be > 0, got %g", w.BaseRadius)
	}
	if w.FallSpeedMin <= 0 || w.FallSpeedMax < w.FallSpeedMin {
		return fmt.Errorf("weather fall speed range [%g, %g] invalid", w.FallSpeedMin, w.FallSpeedMax)
	}
	if w.MeltRateMin <= 0 || w.MeltRateMax < w.MeltRateMin {
		return fmt.Errorf("weather melt rate range [%g, %g] invalid", w.MeltRateMin, w.MeltRateMax)
	}
	if w.MeltZoneStart < 0 || w.MeltZoneStart >= 1 {
		return fmt.Errorf("weather.melt_zone_start must be in [0, 1), got %g", w.MeltZoneStart)
	}
	if w.Opacity < 0 || w.Opacity > 1 {
		return fmt.Errorf("weather.opacity must be in [0, 1], got %g", w.Opacity)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
