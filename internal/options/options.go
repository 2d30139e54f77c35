// Package options holds the wave animation configuration: the base defaults,
// the named presets, and the rules that merge a partial update into the
// effective configuration.
package options

// DirectionMode selects which way each half of the wave set travels.
type DirectionMode string

const (
	DirectionOpposite DirectionMode = "opposite"
	DirectionForward  DirectionMode = "forward"
	DirectionBackward DirectionMode = "backward"
)

// DirectionModeNames returns the supported direction modes.
func DirectionModeNames() []string {
	return []string{string(DirectionOpposite), string(DirectionForward), string(DirectionBackward)}
}

// Config is the fully populated configuration that drives rendering.
type Config struct {
	Preset               string        `yaml:"preset"`
	Speed                float64       `yaml:"speed"` // ms per loop
	BaseColor            string        `yaml:"baseColor"`
	LineWidth            float64       `yaml:"lineWidth"`
	WaveCount            int           `yaml:"waveCount"`
	Amplitude            float64       `yaml:"amplitude"`
	Frequency            float64       `yaml:"frequency"`
	CanvasHeight         float64       `yaml:"canvasHeight"`
	Rotation             float64       `yaml:"rotation"` // degrees
	OverflowMargin       float64       `yaml:"overflowMargin"`
	AmplitudeStagger     float64       `yaml:"amplitudeStagger"`
	PhaseStagger         float64       `yaml:"phaseStagger"`
	YOffsetStagger       float64       `yaml:"yOffsetStagger"`
	CenterAmplitudeBoost bool          `yaml:"centerAmplitudeBoost"`
	WaveDirectionMode    DirectionMode `yaml:"waveDirectionMode"`
	MinOpacity           float64       `yaml:"minOpacity"`
	MaxOpacity           float64       `yaml:"maxOpacity"`
	UseFullScreenHeight  bool          `yaml:"useFullScreenHeight"`
}

// Options is a partial update. Nil fields are left untouched by a merge.
type Options struct {
	Preset               *string        `yaml:"preset,omitempty"`
	Speed                *float64       `yaml:"speed,omitempty"`
	BaseColor            *string        `yaml:"baseColor,omitempty"`
	LineWidth            *float64       `yaml:"lineWidth,omitempty"`
	WaveCount            *int           `yaml:"waveCount,omitempty"`
	Amplitude            *float64       `yaml:"amplitude,omitempty"`
	Frequency            *float64       `yaml:"frequency,omitempty"`
	CanvasHeight         *float64       `yaml:"canvasHeight,omitempty"`
	Rotation             *float64       `yaml:"rotation,omitempty"`
	OverflowMargin       *float64       `yaml:"overflowMargin,omitempty"`
	AmplitudeStagger     *float64       `yaml:"amplitudeStagger,omitempty"`
	PhaseStagger         *float64       `yaml:"phaseStagger,omitempty"`
	YOffsetStagger       *float64       `yaml:"yOffsetStagger,omitempty"`
	CenterAmplitudeBoost *bool          `yaml:"centerAmplitudeBoost,omitempty"`
	WaveDirectionMode    *DirectionMode `yaml:"waveDirectionMode,omitempty"`
	MinOpacity           *float64       `yaml:"minOpacity,omitempty"`
	MaxOpacity           *float64       `yaml:"maxOpacity,omitempty"`
	UseFullScreenHeight  *bool          `yaml:"useFullScreenHeight,omitempty"`
}

// Ptr returns a pointer to v, for building Options literals.
func Ptr[T any](v T) *T {
	return &v
}

// Defaults returns the base configuration used when no preset overrides it.
func Defaults() Config {
	return Config{
		Preset:               "classic",
		Speed:                10000,
		BaseColor:            "123, 59, 174",
		LineWidth:            1.5,
		WaveCount:            16,
		Amplitude:            40,
		Frequency:            0.002,
		CanvasHeight:         400,
		Rotation:             0,
		OverflowMargin:       100,
		AmplitudeStagger:     2.5,
		PhaseStagger:         0.2,
		YOffsetStagger:       8,
		CenterAmplitudeBoost: true,
		WaveDirectionMode:    DirectionOpposite,
		MinOpacity:           0.1,
		MaxOpacity:           0.9,
		UseFullScreenHeight:  true,
	}
}

// Options returns every field of c as a partial update.
func (c Config) Options() Options {
	return Options{
		Preset:               Ptr(c.Preset),
		Speed:                Ptr(c.Speed),
		BaseColor:            Ptr(c.BaseColor),
		LineWidth:            Ptr(c.LineWidth),
		WaveCount:            Ptr(c.WaveCount),
		Amplitude:            Ptr(c.Amplitude),
		Frequency:            Ptr(c.Frequency),
		CanvasHeight:         Ptr(c.CanvasHeight),
		Rotation:             Ptr(c.Rotation),
		OverflowMargin:       Ptr(c.OverflowMargin),
		AmplitudeStagger:     Ptr(c.AmplitudeStagger),
		PhaseStagger:         Ptr(c.PhaseStagger),
		YOffsetStagger:       Ptr(c.YOffsetStagger),
		CenterAmplitudeBoost: Ptr(c.CenterAmplitudeBoost),
		WaveDirectionMode:    Ptr(c.WaveDirectionMode),
		MinOpacity:           Ptr(c.MinOpacity),
		MaxOpacity:           Ptr(c.MaxOpacity),
		UseFullScreenHeight:  Ptr(c.UseFullScreenHeight),
	}
}

// Apply overlays every non-nil field of o onto c.
func (o Options) Apply(c Config) Config {
	if o.Preset != nil {
		c.Preset = *o.Preset
	}
	if o.Speed != nil {
		c.Speed = *o.Speed
	}
	if o.BaseColor != nil {
		c.BaseColor = *o.BaseColor
	}
	if o.LineWidth != nil {
		c.LineWidth = *o.LineWidth
	}
	if o.WaveCount != nil {
		c.WaveCount = *o.WaveCount
	}
	if o.Amplitude != nil {
		c.Amplitude = *o.Amplitude
	}
	if o.Frequency != nil {
		c.Frequency = *o.Frequency
	}
	if o.CanvasHeight != nil {
		c.CanvasHeight = *o.CanvasHeight
	}
	if o.Rotation != nil {
		c.Rotation = *o.Rotation
	}
	if o.OverflowMargin != nil {
		c.OverflowMargin = *o.OverflowMargin
	}
	if o.AmplitudeStagger != nil {
		c.AmplitudeStagger = *o.AmplitudeStagger
	}
	if o.PhaseStagger != nil {
		c.PhaseStagger = *o.PhaseStagger
	}
	if o.YOffsetStagger != nil {
		c.YOffsetStagger = *o.YOffsetStagger
	}
	if o.CenterAmplitudeBoost != nil {
		c.CenterAmplitudeBoost = *o.CenterAmplitudeBoost
	}
	if o.WaveDirectionMode != nil {
		c.WaveDirectionMode = *o.WaveDirectionMode
	}
	if o.MinOpacity != nil {
		c.MinOpacity = *o.MinOpacity
	}
	if o.MaxOpacity != nil {
		c.MaxOpacity = *o.MaxOpacity
	}
	if o.UseFullScreenHeight != nil {
		c.UseFullScreenHeight = *o.UseFullScreenHeight
	}
	return c
}

// Overlay returns o with every non-nil field of other written over it.
func (o Options) Overlay(other Options) Options {
	if other.Preset != nil {
		o.Preset = other.Preset
	}
	if other.Speed != nil {
		o.Speed = other.Speed
	}
	if other.BaseColor != nil {
		o.BaseColor = other.BaseColor
	}
	if other.LineWidth != nil {
		o.LineWidth = other.LineWidth
	}
	if other.WaveCount != nil {
		o.WaveCount = other.WaveCount
	}
	if other.Amplitude != nil {
		o.Amplitude = other.Amplitude
	}
	if other.Frequency != nil {
		o.Frequency = other.Frequency
	}
	if other.CanvasHeight != nil {
		o.CanvasHeight = other.CanvasHeight
	}
	if other.Rotation != nil {
		o.Rotation = other.Rotation
	}
	if other.OverflowMargin != nil {
		o.OverflowMargin = other.OverflowMargin
	}
	if other.AmplitudeStagger != nil {
		o.AmplitudeStagger = other.AmplitudeStagger
	}
	if other.PhaseStagger != nil {
		o.PhaseStagger = other.PhaseStagger
	}
	if other.YOffsetStagger != nil {
		o.YOffsetStagger = other.YOffsetStagger
	}
	if other.CenterAmplitudeBoost != nil {
		o.CenterAmplitudeBoost = other.CenterAmplitudeBoost
	}
	if other.WaveDirectionMode != nil {
		o.WaveDirectionMode = other.WaveDirectionMode
	}
	if other.MinOpacity != nil {
		o.MinOpacity = other.MinOpacity
	}
	if other.MaxOpacity != nil {
		o.MaxOpacity = other.MaxOpacity
	}
	if other.UseFullScreenHeight != nil {
		o.UseFullScreenHeight = other.UseFullScreenHeight
	}
	return o
}
