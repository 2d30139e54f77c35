package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/wave-animation/internal/colors"
	"github.com/iburimskiy/wave-animation/internal/options"
)

func TestRenderSizesCanvasByPixelRatio(t *testing.T) {
	canvas, err := Render(Snapshot{
		Width:      300,
		Height:     200,
		PixelRatio: 2,
		TimeMs:     1234,
		Options:    options.Options{UseFullScreenHeight: options.Ptr(false), CanvasHeight: options.Ptr(120.0)},
	})
	require.NoError(t, err)

	assert.Equal(t, 600, canvas.Bounds().Dx())
	assert.Equal(t, 240, canvas.Bounds().Dy())
	w, h := canvas.DisplaySize()
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 120.0, h)
}

func TestRenderDrawsAroundMidline(t *testing.T) {
	canvas, err := Render(Snapshot{
		Width:  200,
		Height: 200,
		Options: options.Options{
			AmplitudeStagger: options.Ptr(0.0),
			YOffsetStagger:   options.Ptr(0.0),
			Amplitude:        options.Ptr(0.0),
			MinOpacity:       options.Ptr(1.0),
			MaxOpacity:       options.Ptr(1.0),
			LineWidth:        options.Ptr(4.0),
		},
	})
	require.NoError(t, err)

	img := canvas.Image()
	_, _, _, mid := img.At(100, 100).RGBA()
	_, _, _, corner := img.At(5, 5).RGBA()
	assert.NotZero(t, mid, "flat waves sit on the midline")
	assert.Zero(t, corner)
}

func TestWritePNG(t *testing.T) {
	canvas, err := Render(Snapshot{Width: 64, Height: 64})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, canvas.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, canvas.Bounds(), img.Bounds())
}

func TestCanvasLose(t *testing.T) {
	c := NewCanvas(10, 10)
	assert.NotNil(t, c.Context())
	c.Lose()
	assert.Nil(t, c.Context())
}

func TestClearRect(t *testing.T) {
	c := NewCanvas(20, 20)
	ctx := c.Context()
	ctx.SetLineWidth(20)
	ctx.SetStrokeColor(colors.RGBA{R: 255, A: 1})
	ctx.BeginPath()
	ctx.MoveTo(0, 10)
	ctx.LineTo(20, 10)
	ctx.Stroke()
	_, _, _, a := c.Image().At(10, 10).RGBA()
	require.NotZero(t, a)

	ctx.ClearRect(0, 0, 20, 20)
	_, _, _, a = c.Image().At(10, 10).RGBA()
	assert.Zero(t, a)
}

func TestSaveRestoreLineWidth(t *testing.T) {
	c := NewCanvas(10, 10)
	x := c.ctx
	x.SetLineWidth(3)
	x.Save()
	x.SetLineWidth(7)
	x.Restore()
	assert.Equal(t, 3.0, x.lineWidth)

	x.Restore()
	assert.Equal(t, 3.0, x.lineWidth, "unbalanced restore is ignored")
}
