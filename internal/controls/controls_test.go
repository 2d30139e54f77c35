package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/wave-animation/internal/options"
)

// fakeTarget merges like the animation and records every pushed update.
type fakeTarget struct {
	cfg    options.Config
	pushed []options.Options
}

func newFake() *fakeTarget { return &fakeTarget{cfg: options.Defaults()} }

func (f *fakeTarget) Config() options.Config { return f.cfg }

func (f *fakeTarget) SetOptions(partial options.Options) {
	f.pushed = append(f.pushed, partial)
	f.cfg, _ = options.Merge(f.cfg, partial)
}

func TestAdjustPushesOnlyChangedField(t *testing.T) {
	f := newFake()
	p := New(f)
	require.True(t, p.SelectName("amplitude"))

	p.Adjust(1)
	require.Len(t, f.pushed, 1)
	assert.Equal(t, options.Options{Amplitude: options.Ptr(41.0)}, f.pushed[0])
	assert.Equal(t, 41.0, p.Local().Amplitude)
	assert.Equal(t, f.cfg, p.Local())
}

func TestAdjustClampsToRange(t *testing.T) {
	f := newFake()
	p := New(f)
	require.True(t, p.SelectName("waveCount"))

	for i := 0; i < 30; i++ {
		p.Adjust(1)
	}
	assert.Equal(t, 40, p.Local().WaveCount)
	pushes := len(f.pushed)

	p.Adjust(1)
	assert.Len(t, f.pushed, pushes, "no push once the bound is reached")
}

func TestAdjustRoundsFloatSteps(t *testing.T) {
	f := newFake()
	p := New(f)
	require.True(t, p.SelectName("frequency"))

	for i := 0; i < 3; i++ {
		p.Adjust(1)
	}
	assert.Equal(t, 0.0023, p.Local().Frequency)
	_, value := p.Selected()
	assert.Equal(t, "0.0023", value)
}

func TestOpacityPairStaysOrdered(t *testing.T) {
	f := newFake()
	f.cfg.MinOpacity, f.cfg.MaxOpacity = 0.5, 0.5
	p := New(f)

	require.True(t, p.SelectName("minOpacity"))
	p.Adjust(1)
	last := f.pushed[len(f.pushed)-1]
	require.NotNil(t, last.MaxOpacity)
	assert.Equal(t, 0.51, *last.MaxOpacity)
	assert.Equal(t, 0.51, p.Local().MinOpacity)
	assert.Equal(t, 0.51, p.Local().MaxOpacity)

	require.True(t, p.SelectName("maxOpacity"))
	p.Adjust(-1)
	last = f.pushed[len(f.pushed)-1]
	require.NotNil(t, last.MinOpacity)
	assert.Equal(t, 0.5, *last.MinOpacity)
	assert.LessOrEqual(t, p.Local().MinOpacity, p.Local().MaxOpacity)
}

func TestEnumAndBoolControls(t *testing.T) {
	f := newFake()
	p := New(f)

	require.True(t, p.SelectName("waveDirectionMode"))
	_, v := p.Selected()
	assert.Equal(t, "opposite", v)
	p.Adjust(1)
	_, v = p.Selected()
	assert.Equal(t, "forward", v)
	assert.Equal(t, options.DirectionForward, f.cfg.WaveDirectionMode)

	require.True(t, p.SelectName("centerAmplitudeBoost"))
	p.Adjust(-1)
	_, v = p.Selected()
	assert.Equal(t, "off", v)
	assert.False(t, f.cfg.CenterAmplitudeBoost)
}

func TestCyclePresetResyncs(t *testing.T) {
	f := newFake()
	p := New(f)

	p.CyclePreset()
	assert.Equal(t, "calm", p.Local().Preset)
	assert.Equal(t, 25.0, p.Local().Amplitude)
	assert.Equal(t, f.cfg, p.Local())
	assert.Equal(t, options.Options{Preset: options.Ptr("calm")}, f.pushed[0])
}

func TestSelectWraps(t *testing.T) {
	p := New(newFake())
	p.Select(-1)
	name, _ := p.Selected()
	names := Names()
	assert.Equal(t, names[len(names)-1], name)

	p.Select(1)
	name, _ = p.Selected()
	assert.Equal(t, names[0], name)
	assert.False(t, p.SelectName("missing"))
}

func TestBaseColor(t *testing.T) {
	f := newFake()
	p := New(f)
	assert.Equal(t, "#7b3bae", p.BaseColorHex())

	p.SetBaseColor("#7b3bae")
	assert.Empty(t, f.pushed, "unchanged color is not pushed")

	p.SetBaseColor("#0f0")
	assert.Equal(t, "0, 255, 0", f.cfg.BaseColor)
}

func TestToggleFullScreenHeight(t *testing.T) {
	f := newFake()
	p := New(f)
	p.ToggleFullScreenHeight()
	assert.False(t, f.cfg.UseFullScreenHeight)
	assert.False(t, p.Local().UseFullScreenHeight)
}
