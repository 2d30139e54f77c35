// Package wave derives the set of sinusoidal strokes drawn by the animation.
package wave

import (
	"math"

	"github.com/iburimskiy/wave-animation/internal/colors"
	"github.com/iburimskiy/wave-animation/internal/options"
)

// Parameters of the second half of the set. The slight detune makes the two
// halves drift against each other over time.
const (
	secondPhase      = math.Pi / 2
	secondFreqFactor = 1.1
	boostPeak        = 0.5
)

// Wave is one stroke: y = YOffset + Amplitude*sin(Phase + Frequency*x + t).
type Wave struct {
	Amplitude float64
	Frequency float64
	Phase     float64 // radians
	YOffset   float64 // logical pixels
	Direction float64 // -1 or +1
}

// Y samples the wave at horizontal position x for a loop progress in [0,1).
func (w Wave) Y(x, progress float64) float64 {
	return w.YOffset + w.Amplitude*math.Sin(w.Phase+w.Frequency*x+progress*2*math.Pi*w.Direction)
}

type setParams struct {
	count      int
	baseOffset float64
	basePhase  float64
	freqFactor float64
	direction  float64
}

// Build returns the waves for cfg on a canvas of the given logical height,
// plus one stroke color per wave. Opacity rises linearly from MinOpacity on
// the first wave to MaxOpacity on the last.
func Build(cfg options.Config, height float64) ([]Wave, []colors.RGBA) {
	half := cfg.WaveCount / 2
	if half < 1 {
		half = 1
	}
	dirA, dirB := directions(cfg.WaveDirectionMode)

	waves := make([]Wave, 0, 2*half)
	waves = appendSet(waves, cfg, height, setParams{
		count:      half,
		freqFactor: 1,
		direction:  dirA,
	})
	waves = appendSet(waves, cfg, height, setParams{
		count:      half,
		baseOffset: -cfg.YOffsetStagger / 2,
		basePhase:  secondPhase,
		freqFactor: secondFreqFactor,
		direction:  dirB,
	})

	return waves, strokeColors(cfg, len(waves))
}

func directions(mode options.DirectionMode) (float64, float64) {
	switch mode {
	case options.DirectionForward:
		return 1, 1
	case options.DirectionBackward:
		return -1, -1
	default:
		return 1, -1
	}
}

func appendSet(dst []Wave, cfg options.Config, height float64, p setParams) []Wave {
	// Center the whole staggered group on the mid-line.
	start := height/2 + p.baseOffset - cfg.YOffsetStagger*float64(p.count-1)/2
	last := math.Max(float64(p.count-1), 1)

	for i := 0; i < p.count; i++ {
		fi := float64(i)
		boost := 1.0
		if cfg.CenterAmplitudeBoost {
			boost = 1 + boostPeak*(1-fi/last)
		}
		dst = append(dst, Wave{
			Amplitude: (cfg.Amplitude + cfg.AmplitudeStagger*fi) * boost,
			Frequency: cfg.Frequency * p.freqFactor,
			Phase:     p.basePhase + cfg.PhaseStagger*fi,
			YOffset:   start + cfg.YOffsetStagger*fi,
			Direction: p.direction,
		})
	}
	return dst
}

func strokeColors(cfg options.Config, n int) []colors.RGBA {
	r, g, b, _ := colors.ParseRGB(cfg.BaseColor)
	denom := math.Max(float64(n-1), 1)
	out := make([]colors.RGBA, n)
	for i := range out {
		ratio := float64(i) / denom
		out[i] = colors.RGBA{
			R: r, G: g, B: b,
			A: colors.Clamp01(cfg.MinOpacity + (cfg.MaxOpacity-cfg.MinOpacity)*ratio),
		}
	}
	return out
}
