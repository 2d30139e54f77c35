package raster

import (
	"fmt"

	"github.com/iburimskiy/wave-animation/internal/animation"
	"github.com/iburimskiy/wave-animation/internal/loop"
	"github.com/iburimskiy/wave-animation/internal/options"
)

// Snapshot describes a single off-screen frame.
type Snapshot struct {
	Width, Height float64 // viewport, logical pixels
	PixelRatio    float64
	TimeMs        float64
	Options       options.Options
}

// Render draws one frame of the animation described by s and returns the
// canvas holding it.
func Render(s Snapshot, opts ...animation.Option) (*Canvas, error) {
	ratio := s.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	host := loop.NewHost(s.Width, s.Height, ratio)
	canvas := NewCanvas(1, 1)

	anim, err := animation.New(canvas, host, s.Options, opts...)
	if err != nil {
		return nil, fmt.Errorf("create animation: %w", err)
	}
	if err := anim.Start(); err != nil {
		return nil, fmt.Errorf("start animation: %w", err)
	}
	defer anim.Destroy()

	host.Advance(s.TimeMs)
	host.Pump()
	return canvas, nil
}
