package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/wave-animation/internal/options"
)

func TestParsePartial(t *testing.T) {
	o, err := Parse([]byte("preset: calm\namplitude: 33\nwaveDirectionMode: backward\n"))
	require.NoError(t, err)

	require.NotNil(t, o.Preset)
	assert.Equal(t, "calm", *o.Preset)
	require.NotNil(t, o.Amplitude)
	assert.Equal(t, 33.0, *o.Amplitude)
	require.NotNil(t, o.WaveDirectionMode)
	assert.Equal(t, options.DirectionBackward, *o.WaveDirectionMode)
	assert.Nil(t, o.Speed)
	assert.Nil(t, o.UseFullScreenHeight)
}

func TestParseRejectsUnknownPreset(t *testing.T) {
	_, err := Parse([]byte("preset: loud\n"))
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestParseRejectsUnknownDirection(t *testing.T) {
	_, err := Parse([]byte("waveDirectionMode: sideways\n"))
	assert.Error(t, err)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("amplitude: [1, 2"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.yaml")
	in := options.Options{
		Preset:              options.Ptr("sharp"),
		WaveCount:           options.Ptr(8),
		UseFullScreenHeight: options.Ptr(false),
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
