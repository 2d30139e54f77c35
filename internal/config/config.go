package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/wave-animation/internal/options"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Waves - Tab/arrows: tune, P: preset, F: height, C: color, E: export, S: save, Space: pause, Esc/Q: quit"

	// HUD placement
	HUDX = 12
	HUDY = 12

	// Canvas background, the page behind the strokes.
	BackgroundHex = "#282828"
)

// ErrUnknownPreset is returned when an options file names a preset that does
// not exist.
var ErrUnknownPreset = errors.New("unknown preset")

// Load reads a YAML options file. Every field is optional; the result is a
// partial update.
func Load(path string) (options.Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return options.Options{}, err
	}
	return Parse(b)
}

// Parse decodes YAML options and validates enumerated fields.
func Parse(b []byte) (options.Options, error) {
	var o options.Options
	if err := yaml.Unmarshal(b, &o); err != nil {
		return options.Options{}, fmt.Errorf("decode options: %w", err)
	}
	if o.Preset != nil && !options.IsPreset(*o.Preset) {
		return options.Options{}, fmt.Errorf("%w %q", ErrUnknownPreset, *o.Preset)
	}
	if o.WaveDirectionMode != nil {
		switch *o.WaveDirectionMode {
		case options.DirectionOpposite, options.DirectionForward, options.DirectionBackward:
		default:
			return options.Options{}, fmt.Errorf("unknown wave direction mode %q", *o.WaveDirectionMode)
		}
	}
	return o, nil
}

// Save writes o as YAML to path.
func Save(path string, o options.Options) error {
	b, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
