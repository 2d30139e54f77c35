// Package export renders an effective configuration as a minimal options file.
package export

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/wave-animation/internal/options"
)

const header = "# wave animation options\n"

// Snippet returns YAML holding the preset plus every field of cfg that differs
// from what that preset alone produces. Full-screen height is left to the host
// and never exported. The output loads back with config.Load.
func Snippet(cfg options.Config) ([]byte, error) {
	d := baseline(cfg.Preset)
	o := options.Options{
		Preset:               options.Ptr(cfg.Preset),
		Speed:                differ(cfg.Speed, d.Speed),
		BaseColor:            differ(cfg.BaseColor, d.BaseColor),
		LineWidth:            differ(cfg.LineWidth, d.LineWidth),
		WaveCount:            differ(cfg.WaveCount, d.WaveCount),
		Amplitude:            differ(cfg.Amplitude, d.Amplitude),
		Frequency:            differ(cfg.Frequency, d.Frequency),
		CanvasHeight:         differ(cfg.CanvasHeight, d.CanvasHeight),
		Rotation:             differ(cfg.Rotation, d.Rotation),
		OverflowMargin:       differ(cfg.OverflowMargin, d.OverflowMargin),
		AmplitudeStagger:     differ(cfg.AmplitudeStagger, d.AmplitudeStagger),
		PhaseStagger:         differ(cfg.PhaseStagger, d.PhaseStagger),
		YOffsetStagger:       differ(cfg.YOffsetStagger, d.YOffsetStagger),
		CenterAmplitudeBoost: differ(cfg.CenterAmplitudeBoost, d.CenterAmplitudeBoost),
		WaveDirectionMode:    differ(cfg.WaveDirectionMode, d.WaveDirectionMode),
		MinOpacity:           differ(cfg.MinOpacity, d.MinOpacity),
		MaxOpacity:           differ(cfg.MaxOpacity, d.MaxOpacity),
	}

	body, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encode snippet: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(body)
	return buf.Bytes(), nil
}

// baseline is the configuration loading the preset yields before any other
// field is applied.
func baseline(preset string) options.Config {
	d := options.Defaults()
	if p, ok := options.Presets[preset]; ok {
		d = p.Apply(d)
	}
	return d
}

func differ[T comparable](v, def T) *T {
	if v == def {
		return nil
	}
	return &v
}
