package options

// Changes reports which structural side effects a configuration update needs.
type Changes struct {
	Resize  bool
	Rebuild bool
}

// Diff compares two configurations field by field. Fields that the renderer
// reads every frame (speed, rotation, line width, overflow margin) never
// require structural work.
func Diff(prev, next Config) Changes {
	var ch Changes
	ch.Resize = prev.CanvasHeight != next.CanvasHeight ||
		prev.UseFullScreenHeight != next.UseFullScreenHeight
	ch.Rebuild = ch.Resize ||
		prev.WaveCount != next.WaveCount ||
		prev.Amplitude != next.Amplitude ||
		prev.Frequency != next.Frequency ||
		prev.BaseColor != next.BaseColor ||
		prev.AmplitudeStagger != next.AmplitudeStagger ||
		prev.PhaseStagger != next.PhaseStagger ||
		prev.YOffsetStagger != next.YOffsetStagger ||
		prev.CenterAmplitudeBoost != next.CenterAmplitudeBoost ||
		prev.WaveDirectionMode != next.WaveDirectionMode ||
		prev.MinOpacity != next.MinOpacity ||
		prev.MaxOpacity != next.MaxOpacity
	return ch
}

// Merge resolves the configuration that results from applying partial to
// prev, along with the side effects the change requires.
//
// Selecting a different preset rebuilds from Defaults, overlays the preset,
// then overlays the rest of partial. Presets are fixed-height looks, so
// full-screen height is switched off unless partial sets it explicitly.
// Otherwise partial is merged onto prev field by field.
func Merge(prev Config, partial Options) (Config, Changes) {
	var next Config
	switched := partial.Preset != nil && *partial.Preset != prev.Preset
	if switched {
		name := *partial.Preset
		next = Presets[name].Apply(Defaults())
		rest := partial
		rest.Preset = nil
		next = rest.Apply(next)
		next.Preset = name
		if partial.UseFullScreenHeight == nil {
			next.UseFullScreenHeight = false
		}
	} else {
		next = partial.Apply(prev)
	}

	normalized := normalizeWaveCount(&next)
	fixOpacity(&next, partial)

	ch := Diff(prev, next)
	if switched || (normalized && partial.WaveCount != nil) {
		ch.Rebuild = true
	}
	return next, ch
}

// Normalize applies the structural invariants to a configuration built
// outside Merge.
func Normalize(c Config) Config {
	normalizeWaveCount(&c)
	fixOpacity(&c, Options{})
	return c
}

// normalizeWaveCount keeps the count even and at least 2. It reports whether
// the count was adjusted.
func normalizeWaveCount(c *Config) bool {
	n := c.WaveCount
	if n%2 != 0 {
		n++
	}
	if n < 2 {
		n = 2
	}
	if n == c.WaveCount {
		return false
	}
	c.WaveCount = n
	return true
}

// fixOpacity pulls the bound that partial did not set to meet the one it did.
func fixOpacity(c *Config, partial Options) {
	if c.MinOpacity <= c.MaxOpacity {
		return
	}
	if partial.MaxOpacity != nil && partial.MinOpacity == nil {
		c.MinOpacity = c.MaxOpacity
		return
	}
	c.MaxOpacity = c.MinOpacity
}
