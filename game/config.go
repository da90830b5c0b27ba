package game

import (
	"github.com/driftline/flurry/config"
	"github.com/driftline/flurry/scene"
	"github.com/driftline/flurry/weather"
)

// tuningFromConfig maps the YAML weather section onto the worker's
// tuning parameters.
func tuningFromConfig(cfg *config.Config) weather.Tuning {
	w := cfg.Weather
	return weather.Tuning{
		FallSpeedMin:     w.FallSpeedMin,
		FallSpeedMax:     w.FallSpeedMax,
		SwayAmplitudeMax: w.SwayAmplitudeMax,
		SwayFrequency:    w.SwayFrequency,
		DriftRateMax:     w.DriftRateMax,
		Opacity:          w.Opacity,
		MeltRateMin:      w.MeltRateMin,
		MeltRateMax:      w.MeltRateMax,
		MeltZoneStart:    w.MeltZoneStart,
	}
}

// sceneParamsFromConfig maps the YAML scene section onto scene params.
func sceneParamsFromConfig(cfg *config.Config) scene.Params {
	return scene.Params{
		Props:      cfg.Scene.Props,
		Layers:     cfg.Scene.Layers,
		NoiseScale: cfg.Scene.NoiseScale,
		DriftSpeed: float32(cfg.Scene.DriftSpeed),
		Width:      cfg.Derived.ScreenW32,
		Height:     cfg.Derived.ScreenH32,
	}
}
