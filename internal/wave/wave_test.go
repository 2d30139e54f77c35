package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/wave-animation/internal/options"
)

func TestBuildLengthsFollowWaveCount(t *testing.T) {
	for _, name := range options.PresetNames() {
		cfg := options.Presets[name].Apply(options.Defaults())
		waves, strokes := Build(cfg, 400)
		assert.Len(t, waves, cfg.WaveCount, name)
		assert.Len(t, strokes, len(waves), name)
		assert.Equal(t, 0, len(waves)%2, name)
	}
}

func TestBuildZeroStaggerCollapses(t *testing.T) {
	cfg := options.Defaults()
	cfg.WaveCount = 16
	cfg.Amplitude = 40
	cfg.Frequency = 0.002
	cfg.AmplitudeStagger = 0
	cfg.PhaseStagger = 0
	cfg.YOffsetStagger = 0
	cfg.CenterAmplitudeBoost = false

	waves, _ := Build(cfg, 400)
	require.Len(t, waves, 16)
	for i, w := range waves {
		assert.Equal(t, 40.0, w.Amplitude, "wave %d", i)
		assert.Equal(t, 200.0, w.YOffset, "wave %d", i)
	}
}

func TestBuildSetsDiffer(t *testing.T) {
	cfg := options.Defaults()
	cfg.WaveCount = 4
	waves, _ := Build(cfg, 400)
	require.Len(t, waves, 4)

	a, b := waves[0], waves[2]
	assert.Equal(t, 0.0, a.Phase)
	assert.InDelta(t, math.Pi/2, b.Phase, 1e-12)
	assert.InDelta(t, cfg.Frequency, a.Frequency, 1e-12)
	assert.InDelta(t, cfg.Frequency*1.1, b.Frequency, 1e-12)
	assert.InDelta(t, a.YOffset-cfg.YOffsetStagger/2, b.YOffset, 1e-9)
}

func TestBuildStaggerAndCentering(t *testing.T) {
	cfg := options.Defaults()
	cfg.WaveCount = 6
	cfg.Amplitude = 10
	cfg.AmplitudeStagger = 2
	cfg.PhaseStagger = 0.5
	cfg.YOffsetStagger = 10
	cfg.CenterAmplitudeBoost = false

	waves, _ := Build(cfg, 300)
	first := waves[:3]
	assert.Equal(t, []float64{10, 12, 14}, []float64{first[0].Amplitude, first[1].Amplitude, first[2].Amplitude})
	assert.Equal(t, []float64{0, 0.5, 1}, []float64{first[0].Phase, first[1].Phase, first[2].Phase})
	assert.Equal(t, []float64{140, 150, 160}, []float64{first[0].YOffset, first[1].YOffset, first[2].YOffset})
}

func TestBuildCenterBoost(t *testing.T) {
	cfg := options.Defaults()
	cfg.WaveCount = 8
	cfg.Amplitude = 20
	cfg.AmplitudeStagger = 0
	cfg.CenterAmplitudeBoost = true

	waves, _ := Build(cfg, 400)
	assert.InDelta(t, 30.0, waves[0].Amplitude, 1e-9)
	assert.InDelta(t, 20.0, waves[3].Amplitude, 1e-9)
	for i := 1; i < 4; i++ {
		assert.Less(t, waves[i].Amplitude, waves[i-1].Amplitude)
	}
	assert.InDelta(t, 30.0, waves[4].Amplitude, 1e-9, "second set restarts the boost")
}

func TestBuildDirections(t *testing.T) {
	cases := []struct {
		mode options.DirectionMode
		a, b float64
	}{
		{options.DirectionOpposite, 1, -1},
		{options.DirectionForward, 1, 1},
		{options.DirectionBackward, -1, -1},
	}
	for _, tc := range cases {
		cfg := options.Defaults()
		cfg.WaveCount = 4
		cfg.WaveDirectionMode = tc.mode
		waves, _ := Build(cfg, 400)
		assert.Equal(t, []float64{tc.a, tc.a, tc.b, tc.b},
			[]float64{waves[0].Direction, waves[1].Direction, waves[2].Direction, waves[3].Direction}, string(tc.mode))
	}
}

func TestBuildOpacityGradient(t *testing.T) {
	cfg := options.Defaults()
	cfg.WaveCount = 10
	cfg.MinOpacity = 0.2
	cfg.MaxOpacity = 0.8

	_, strokes := Build(cfg, 400)
	require.Len(t, strokes, 10)
	assert.InDelta(t, 0.2, strokes[0].A, 1e-9)
	assert.InDelta(t, 0.8, strokes[9].A, 1e-9)
	for i := 1; i < len(strokes); i++ {
		assert.GreaterOrEqual(t, strokes[i].A, strokes[i-1].A)
	}
	assert.Equal(t, "rgba(123, 59, 174, 0.200)", strokes[0].String())
}

func TestBuildOpacityClamped(t *testing.T) {
	cfg := options.Defaults()
	cfg.WaveCount = 4
	cfg.MinOpacity = -0.5
	cfg.MaxOpacity = 1.5

	_, strokes := Build(cfg, 400)
	for _, s := range strokes {
		assert.GreaterOrEqual(t, s.A, 0.0)
		assert.LessOrEqual(t, s.A, 1.0)
	}
}

func TestBuildMalformedColorFallsBackToWhite(t *testing.T) {
	cfg := options.Defaults()
	cfg.BaseColor = "purple"
	_, strokes := Build(cfg, 400)
	assert.Equal(t, uint8(255), strokes[0].R)
	assert.Equal(t, uint8(255), strokes[0].G)
	assert.Equal(t, uint8(255), strokes[0].B)
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := options.Defaults()
	w1, c1 := Build(cfg, 512)
	w2, c2 := Build(cfg, 512)
	assert.Equal(t, w1, w2)
	assert.Equal(t, c1, c2)
}

func TestWaveY(t *testing.T) {
	w := Wave{Amplitude: 10, Frequency: 0, Phase: math.Pi / 2, YOffset: 100, Direction: 1}
	assert.InDelta(t, 110.0, w.Y(0, 0), 1e-9)
	assert.InDelta(t, 90.0, w.Y(0, 0.5), 1e-9)
}
