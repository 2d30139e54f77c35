package options

var presetOrder = []string{"classic", "calm", "sharp", "uniform", "spaced"}

// Presets maps each preset name to the overlay it applies on top of Defaults.
var Presets = map[string]Options{
	"classic": {
		Speed:                Ptr(10000.0),
		Amplitude:            Ptr(40.0),
		Frequency:            Ptr(0.002),
		WaveCount:            Ptr(16),
		LineWidth:            Ptr(1.5),
		AmplitudeStagger:     Ptr(2.5),
		PhaseStagger:         Ptr(0.2),
		YOffsetStagger:       Ptr(8.0),
		CenterAmplitudeBoost: Ptr(true),
		WaveDirectionMode:    Ptr(DirectionOpposite),
	},
	"calm": {
		Speed:                Ptr(15000.0),
		Amplitude:            Ptr(25.0),
		Frequency:            Ptr(0.0015),
		WaveCount:            Ptr(10),
		LineWidth:            Ptr(1.8),
		AmplitudeStagger:     Ptr(1.5),
		PhaseStagger:         Ptr(0.1),
		YOffsetStagger:       Ptr(12.0),
		CenterAmplitudeBoost: Ptr(false),
		WaveDirectionMode:    Ptr(DirectionOpposite),
	},
	"sharp": {
		Speed:                Ptr(8000.0),
		Amplitude:            Ptr(50.0),
		Frequency:            Ptr(0.0035),
		WaveCount:            Ptr(20),
		LineWidth:            Ptr(1.2),
		AmplitudeStagger:     Ptr(1.0),
		PhaseStagger:         Ptr(0.3),
		YOffsetStagger:       Ptr(5.0),
		CenterAmplitudeBoost: Ptr(true),
		WaveDirectionMode:    Ptr(DirectionOpposite),
	},
	"uniform": {
		Speed:                Ptr(12000.0),
		Amplitude:            Ptr(35.0),
		Frequency:            Ptr(0.002),
		WaveCount:            Ptr(12),
		AmplitudeStagger:     Ptr(0.0),
		PhaseStagger:         Ptr(0.0),
		YOffsetStagger:       Ptr(15.0),
		CenterAmplitudeBoost: Ptr(false),
		WaveDirectionMode:    Ptr(DirectionForward),
	},
	"spaced": {
		Speed:                Ptr(20000.0),
		Amplitude:            Ptr(60.0),
		Frequency:            Ptr(0.001),
		WaveCount:            Ptr(6),
		LineWidth:            Ptr(2.0),
		AmplitudeStagger:     Ptr(5.0),
		PhaseStagger:         Ptr(0.5),
		YOffsetStagger:       Ptr(40.0),
		CenterAmplitudeBoost: Ptr(true),
		WaveDirectionMode:    Ptr(DirectionOpposite),
	},
}

// PresetNames returns the preset identifiers in display order.
func PresetNames() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// IsPreset reports whether name is a known preset.
func IsPreset(name string) bool {
	_, ok := Presets[name]
	return ok
}

// NextPreset returns the preset after current in display order, wrapping
// around. An unknown current yields the first preset.
func NextPreset(current string) string {
	for i, name := range presetOrder {
		if name == current {
			return presetOrder[(i+1)%len(presetOrder)]
		}
	}
	return presetOrder[0]
}
