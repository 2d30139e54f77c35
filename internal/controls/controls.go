// Package controls is the tuning panel: a fixed list of adjustable settings
// over a local copy of the configuration. Every edit is pushed to the
// animation as a partial update holding only the changed fields.
package controls

import (
	"fmt"
	"math"

	"github.com/iburimskiy/wave-animation/internal/colors"
	"github.com/iburimskiy/wave-animation/internal/options"
)

// Target receives the pushed updates. *animation.Animation satisfies it.
type Target interface {
	Config() options.Config
	SetOptions(partial options.Options)
}

type control struct {
	name     string
	min, max float64
	step     float64
	get      func(options.Config) float64
	set      func(*options.Options, float64)
	label    func(float64) string
}

func number(v float64) string { return fmt.Sprintf("%g", v) }

func onOff(v float64) string {
	if v != 0 {
		return "on"
	}
	return "off"
}

var directions = []options.DirectionMode{
	options.DirectionOpposite,
	options.DirectionForward,
	options.DirectionBackward,
}

func directionIndex(m options.DirectionMode) float64 {
	for i, d := range directions {
		if d == m {
			return float64(i)
		}
	}
	return 0
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var list = []control{
	{
		name: "speed", min: 1000, max: 30000, step: 500,
		get: func(c options.Config) float64 { return c.Speed },
		set: func(o *options.Options, v float64) { o.Speed = options.Ptr(v) },
	},
	{
		name: "rotation", min: -180, max: 180, step: 1,
		get: func(c options.Config) float64 { return c.Rotation },
		set: func(o *options.Options, v float64) { o.Rotation = options.Ptr(v) },
	},
	{
		name: "waveDirectionMode", min: 0, max: float64(len(directions) - 1), step: 1,
		get:   func(c options.Config) float64 { return directionIndex(c.WaveDirectionMode) },
		set:   func(o *options.Options, v float64) { o.WaveDirectionMode = options.Ptr(directions[int(v)]) },
		label: func(v float64) string { return string(directions[int(v)]) },
	},
	{
		name: "lineWidth", min: 0.5, max: 5, step: 0.1,
		get: func(c options.Config) float64 { return c.LineWidth },
		set: func(o *options.Options, v float64) { o.LineWidth = options.Ptr(v) },
	},
	{
		name: "canvasHeight", min: 100, max: 800, step: 10,
		get: func(c options.Config) float64 { return c.CanvasHeight },
		set: func(o *options.Options, v float64) { o.CanvasHeight = options.Ptr(v) },
	},
	{
		name: "overflowMargin", min: 0, max: 300, step: 10,
		get: func(c options.Config) float64 { return c.OverflowMargin },
		set: func(o *options.Options, v float64) { o.OverflowMargin = options.Ptr(v) },
	},
	{
		name: "minOpacity", min: 0, max: 1, step: 0.01,
		get: func(c options.Config) float64 { return c.MinOpacity },
		set: func(o *options.Options, v float64) { o.MinOpacity = options.Ptr(v) },
	},
	{
		name: "maxOpacity", min: 0, max: 1, step: 0.01,
		get: func(c options.Config) float64 { return c.MaxOpacity },
		set: func(o *options.Options, v float64) { o.MaxOpacity = options.Ptr(v) },
	},
	{
		name: "waveCount", min: 2, max: 40, step: 2,
		get: func(c options.Config) float64 { return float64(c.WaveCount) },
		set: func(o *options.Options, v float64) { o.WaveCount = options.Ptr(int(v)) },
	},
	{
		name: "amplitude", min: 5, max: 100, step: 1,
		get: func(c options.Config) float64 { return c.Amplitude },
		set: func(o *options.Options, v float64) { o.Amplitude = options.Ptr(v) },
	},
	{
		name: "frequency", min: 0.0005, max: 0.01, step: 0.0001,
		get: func(c options.Config) float64 { return c.Frequency },
		set: func(o *options.Options, v float64) { o.Frequency = options.Ptr(v) },
	},
	{
		name: "centerAmplitudeBoost", min: 0, max: 1, step: 1,
		get:   func(c options.Config) float64 { return boolValue(c.CenterAmplitudeBoost) },
		set:   func(o *options.Options, v float64) { o.CenterAmplitudeBoost = options.Ptr(v != 0) },
		label: onOff,
	},
	{
		name: "amplitudeStagger", min: 0, max: 10, step: 0.1,
		get: func(c options.Config) float64 { return c.AmplitudeStagger },
		set: func(o *options.Options, v float64) { o.AmplitudeStagger = options.Ptr(v) },
	},
	{
		name: "phaseStagger", min: 0, max: math.Pi / 2, step: 0.01,
		get: func(c options.Config) float64 { return c.PhaseStagger },
		set: func(o *options.Options, v float64) { o.PhaseStagger = options.Ptr(v) },
	},
	{
		name: "yOffsetStagger", min: 0, max: 50, step: 1,
		get: func(c options.Config) float64 { return c.YOffsetStagger },
		set: func(o *options.Options, v float64) { o.YOffsetStagger = options.Ptr(v) },
	},
}

// Panel tracks the selected control and the local configuration copy.
type Panel struct {
	target   Target
	local    options.Config
	selected int
}

// New returns a panel synced to target's current configuration.
func New(target Target) *Panel {
	return &Panel{target: target, local: target.Config()}
}

// Local returns the panel's configuration copy.
func (p *Panel) Local() options.Config { return p.local }

// Names returns the control names in display order.
func Names() []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.name
	}
	return out
}

// Selected returns the name and formatted value of the selected control.
func (p *Panel) Selected() (name, value string) {
	c := list[p.selected]
	v := c.get(p.local)
	if c.label != nil {
		return c.name, c.label(v)
	}
	return c.name, number(round(v, c.step))
}

// Select moves the selection by delta, wrapping around.
func (p *Panel) Select(delta int) {
	n := len(list)
	p.selected = ((p.selected+delta)%n + n) % n
}

// SelectName selects the control called name. It reports whether one exists.
func (p *Panel) SelectName(name string) bool {
	for i, c := range list {
		if c.name == name {
			p.selected = i
			return true
		}
	}
	return false
}

// Adjust steps the selected control by dir steps, clamped to its range. The
// opacity pair is kept ordered locally before anything is pushed.
func (p *Panel) Adjust(dir int) {
	c := list[p.selected]
	cur := c.get(p.local)
	v := round(math.Min(c.max, math.Max(c.min, cur+float64(dir)*c.step)), c.step)
	if v == cur {
		return
	}

	var partial options.Options
	c.set(&partial, v)
	switch c.name {
	case "minOpacity":
		if v > p.local.MaxOpacity {
			partial.MaxOpacity = options.Ptr(v)
		}
	case "maxOpacity":
		if v < p.local.MinOpacity {
			partial.MinOpacity = options.Ptr(v)
		}
	}
	p.push(partial)
}

// CyclePreset switches to the next preset and resyncs from the target, since
// a preset rewrites most fields.
func (p *Panel) CyclePreset() {
	p.target.SetOptions(options.Options{Preset: options.Ptr(options.NextPreset(p.local.Preset))})
	p.local = p.target.Config()
}

// ToggleFullScreenHeight flips between viewport height and the fixed height.
func (p *Panel) ToggleFullScreenHeight() {
	p.push(options.Options{UseFullScreenHeight: options.Ptr(!p.local.UseFullScreenHeight)})
}

// SetBaseColor takes a "#rrggbb" color from a picker.
func (p *Panel) SetBaseColor(hex string) {
	rgb := colors.HexToRGB(hex)
	if rgb == p.local.BaseColor {
		return
	}
	p.push(options.Options{BaseColor: options.Ptr(rgb)})
}

// BaseColorHex returns the base color for seeding a picker.
func (p *Panel) BaseColorHex() string {
	return colors.RGBToHex(p.local.BaseColor)
}

func (p *Panel) push(partial options.Options) {
	p.local = partial.Apply(p.local)
	p.target.SetOptions(partial)
}

// round snaps v to the precision of step, dropping float noise from repeated
// additions.
func round(v, step float64) float64 {
	if step >= 1 {
		return math.Round(v)
	}
	digits := math.Ceil(-math.Log10(step))
	scale := math.Pow(10, digits)
	return math.Round(v*scale) / scale
}
