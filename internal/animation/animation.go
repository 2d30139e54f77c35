// Package animation drives the looping wave strokes on a canvas: it owns the
// effective configuration, keeps the canvas sized to the viewport and redraws
// every frame the host schedules.
package animation

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/wave-animation/internal/colors"
	"github.com/iburimskiy/wave-animation/internal/options"
	"github.com/iburimskiy/wave-animation/internal/wave"
)

const (
	minCanvasHeight = 50
	minStepSize     = 2
	samplesPerWidth = 150
)

// ErrNoContext is returned by New and Start when the canvas cannot provide a
// drawing context.
var ErrNoContext = errors.New("animation: canvas has no 2D drawing context")

// Stats counts the structural work done since construction.
type Stats struct {
	Resizes  int
	Rebuilds int
	Frames   int
}

// Option configures an Animation at construction.
type Option func(*Animation)

// WithLogger routes debug and warning output to l.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Animation) {
		a.log = l
	}
}

// Animation is the render loop controller. It is not safe for concurrent use;
// every method and callback must run on the host's UI thread.
type Animation struct {
	canvas Canvas
	host   Host
	log    zerolog.Logger

	cfg     options.Config
	waves   []wave.Wave
	strokes []colors.RGBA

	width      float64
	height     float64
	pixelRatio float64
	step       float64

	running bool
	frame   FrameID
	unwatch func()
	stats   Stats
}

// New attaches an animation to canvas. The effective configuration is the
// base defaults merged with partial. The animation starts Stopped.
func New(canvas Canvas, host Host, partial options.Options, opts ...Option) (*Animation, error) {
	if canvas == nil || canvas.Context() == nil {
		return nil, ErrNoContext
	}
	a := &Animation{
		canvas: canvas,
		host:   host,
		log:    zerolog.Nop(),
		cfg:    options.Defaults(),
		step:   minStepSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.pixelRatio = a.devicePixelRatio()
	a.SetOptions(partial)
	return a, nil
}

// Config returns the current effective configuration.
func (a *Animation) Config() options.Config { return a.cfg }

// Running reports whether the frame loop is active.
func (a *Animation) Running() bool { return a.running }

// Size returns the cached logical canvas size.
func (a *Animation) Size() (width, height float64) { return a.width, a.height }

// StepSize returns the horizontal sampling interval in logical pixels.
func (a *Animation) StepSize() float64 { return a.step }

// Stats returns counters of resizes, rebuilds and drawn frames.
func (a *Animation) Stats() Stats { return a.stats }

// Waves returns a copy of the current wave set.
func (a *Animation) Waves() []wave.Wave {
	out := make([]wave.Wave, len(a.waves))
	copy(out, a.waves)
	return out
}

// Colors returns a copy of the stroke colors, parallel to Waves.
func (a *Animation) Colors() []colors.RGBA {
	out := make([]colors.RGBA, len(a.strokes))
	copy(out, a.strokes)
	return out
}

// Start sizes the canvas, builds the wave set if needed and schedules the
// first frame. It is a no-op while already running.
func (a *Animation) Start() error {
	if a.running {
		return nil
	}
	if a.canvas.Context() == nil {
		return ErrNoContext
	}
	a.running = true
	if a.unwatch == nil {
		a.unwatch = a.host.OnResize(a.Resize)
	}
	if !a.resize() && len(a.waves) == 0 {
		a.rebuild()
	}
	a.frame = a.host.RequestFrame(a.tick)
	return nil
}

// Stop cancels the pending frame, stops listening for resizes and drops the
// wave set. Start rebuilds it.
func (a *Animation) Stop() {
	if a.unwatch != nil {
		a.unwatch()
		a.unwatch = nil
	}
	if a.running {
		a.host.CancelFrame(a.frame)
		a.frame = 0
		a.running = false
	}
	a.waves = nil
	a.strokes = nil
}

// Destroy releases everything Start acquired. No callback fires after it
// returns.
func (a *Animation) Destroy() {
	a.Stop()
}

// SetOptions merges partial into the effective configuration. While running,
// a height change resizes the canvas and a structural change rebuilds the
// waves; anything else is picked up by the next frame.
func (a *Animation) SetOptions(partial options.Options) {
	next, ch := options.Merge(a.cfg, partial)
	a.cfg = next
	if !a.running {
		return
	}
	if ch.Resize && a.resize() {
		return
	}
	// A resize that found the size unchanged did not rebuild; the other fields
	// in the same update still need it.
	if ch.Rebuild {
		a.rebuild()
	}
}

// Resize matches the canvas to the viewport (full-screen height) or to the
// configured height. Nothing happens when the logical size is unchanged.
func (a *Animation) Resize() {
	a.resize()
}

func (a *Animation) resize() bool {
	if a.canvas.Context() == nil {
		return false
	}
	width, _ := a.host.ViewportSize()
	height := a.targetHeight()
	if width == a.width && height == a.height {
		return false
	}
	a.width, a.height = width, height
	a.pixelRatio = a.devicePixelRatio()

	a.canvas.SetSize(int(width*a.pixelRatio), int(height*a.pixelRatio))
	a.canvas.SetDisplaySize(width, height)
	if ctx := a.canvas.Context(); ctx != nil {
		ctx.Scale(a.pixelRatio, a.pixelRatio)
	}
	a.step = math.Max(minStepSize, math.Floor(width/samplesPerWidth))
	a.stats.Resizes++

	a.log.Debug().
		Float64("width", width).
		Float64("height", height).
		Float64("pixel_ratio", a.pixelRatio).
		Float64("step", a.step).
		Msg("canvas resized")

	a.rebuild()
	return true
}

func (a *Animation) targetHeight() float64 {
	if a.cfg.UseFullScreenHeight {
		_, h := a.host.ViewportSize()
		return h
	}
	h := a.cfg.CanvasHeight
	if h == 0 {
		h = options.Defaults().CanvasHeight
	}
	return math.Max(minCanvasHeight, h)
}

func (a *Animation) devicePixelRatio() float64 {
	if r := a.host.DevicePixelRatio(); r > 0 {
		return r
	}
	return 1
}

func (a *Animation) rebuild() {
	a.waves, a.strokes = wave.Build(a.cfg, a.targetHeight())
	a.stats.Rebuilds++
	a.log.Debug().
		Int("waves", len(a.waves)).
		Str("preset", a.cfg.Preset).
		Msg("wave set rebuilt")
}

func (a *Animation) tick(timestampMs float64) {
	if !a.running {
		return
	}
	ctx := a.canvas.Context()
	if ctx == nil {
		a.log.Warn().Msg("drawing context lost; stopping animation")
		a.frame = 0
		a.Stop()
		return
	}
	a.draw(ctx, Progress(timestampMs, a.cfg.Speed))
	a.stats.Frames++
	a.frame = a.host.RequestFrame(a.tick)
}

// Progress maps a timestamp onto the loop: a sawtooth in [0,1) with the given
// period in milliseconds.
func Progress(timestampMs, periodMs float64) float64 {
	period := math.Max(periodMs, 1)
	p := math.Mod(timestampMs, period) / period
	if p < 0 {
		p++
	}
	return p
}

func (a *Animation) draw(ctx Context, progress float64) {
	w, h := a.width, a.height
	ctx.ClearRect(0, 0, w, h)

	rotated := a.cfg.Rotation != 0
	if rotated {
		ctx.Save()
		ctx.Translate(w/2, h/2)
		ctx.Rotate(a.cfg.Rotation * math.Pi / 180)
		ctx.Translate(-w/2, -h/2)
	}
	ctx.SetLineWidth(a.cfg.LineWidth)

	start := -a.cfg.OverflowMargin
	end := w + a.cfg.OverflowMargin
	for i, wv := range a.waves {
		ctx.SetStrokeColor(a.strokeColor(i))
		ctx.BeginPath()
		ctx.MoveTo(start, wv.Y(start, progress))
		for x := start + a.step; x <= end; x += a.step {
			ctx.LineTo(x, wv.Y(x, progress))
		}
		ctx.Stroke()
	}

	if rotated {
		ctx.Restore()
	}
}

func (a *Animation) strokeColor(i int) colors.RGBA {
	if i < len(a.strokes) {
		return a.strokes[i]
	}
	r, g, b, _ := colors.ParseRGB(a.cfg.BaseColor)
	return colors.RGBA{R: r, G: g, B: b, A: 1}
}
