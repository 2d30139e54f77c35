// Package game hosts the wave animation in an ebiten window: it schedules
// frames, reports viewport changes and maps keys onto the tuning panel.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/wave-animation/internal/animation"
	"github.com/iburimskiy/wave-animation/internal/config"
	"github.com/iburimskiy/wave-animation/internal/controls"
	"github.com/iburimskiy/wave-animation/internal/export"
	"github.com/iburimskiy/wave-animation/internal/loop"
	"github.com/iburimskiy/wave-animation/internal/options"
)

// Key repeat, in ticks.
const (
	repeatDelay    = 20
	repeatInterval = 3
)

// Game implements ebiten.Game. The embedded loop.Host is the animation's
// host: Update pumps its frames and Layout feeds it the window size.
type Game struct {
	*loop.Host

	canvas *Canvas
	anim   *animation.Animation
	panel  *controls.Panel
	picker *picker

	start      time.Time
	background color.RGBA
	savePath   string

	// input edge detection
	prevKey map[ebiten.Key]bool

	status  string
	lastErr error
}

// Option configures a Game.
type Option func(*Game)

// WithSavePath enables the save key, which writes the effective configuration
// to path.
func WithSavePath(path string) Option {
	return func(g *Game) {
		g.savePath = path
	}
}

// New creates the window host and starts the animation with partial merged
// over the defaults.
func New(partial options.Options, opts ...Option) (*Game, error) {
	g := &Game{
		Host:       loop.NewHost(config.WindowWidth, config.WindowHeight, 1),
		canvas:     NewCanvas(1, 1),
		picker:     newPicker(),
		start:      time.Now(),
		background: opaque(config.BackgroundHex),
		prevKey:    map[ebiten.Key]bool{},
	}
	for _, opt := range opts {
		opt(g)
	}

	anim, err := animation.New(g.canvas, g, partial, animation.WithLogger(log.Logger))
	if err != nil {
		return nil, fmt.Errorf("attach animation: %w", err)
	}
	if err := anim.Start(); err != nil {
		return nil, fmt.Errorf("start animation: %w", err)
	}
	g.anim = anim
	g.panel = controls.New(anim)
	return g, nil
}

// Close stops the animation and frees the canvas.
func (g *Game) Close() {
	g.anim.Destroy()
	g.canvas.Dispose()
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if justPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.panel.Select(-1)
		} else {
			g.panel.Select(1)
		}
	}
	if repeating(ebiten.KeyArrowRight) {
		g.panel.Adjust(1)
	}
	if repeating(ebiten.KeyArrowLeft) {
		g.panel.Adjust(-1)
	}
	if justPressed(ebiten.KeyP) {
		g.panel.CyclePreset()
		g.status = "preset " + g.panel.Local().Preset
	}
	if justPressed(ebiten.KeyF) {
		g.panel.ToggleFullScreenHeight()
	}
	if justPressed(ebiten.KeyC) {
		g.picker.show(g.panel.BaseColorHex())
	}
	if justPressed(ebiten.KeyE) {
		g.exportSnippet()
	}
	if justPressed(ebiten.KeyS) {
		g.save()
	}
	if justPressed(ebiten.KeySpace) {
		g.toggleRunning()
	}

	hex, ok, err := g.picker.poll()
	if err != nil {
		g.fail("color picker", err)
	} else if ok {
		g.panel.SetBaseColor(hex)
	}

	g.SetTime(float64(time.Since(g.start).Microseconds()) / 1000)
	g.Pump()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	if img := g.canvas.Image(); img != nil {
		op := &ebiten.DrawImageOptions{}
		top := (screen.Bounds().Dy() - img.Bounds().Dy()) / 2
		op.GeoM.Translate(0, float64(top))
		screen.DrawImage(img, op)
	}

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	cfg := g.anim.Config()
	name, value := g.panel.Selected()

	state := "running"
	if !g.anim.Running() {
		state = "stopped"
	}
	lines := []string{
		fmt.Sprintf("%s: %s", name, value),
		fmt.Sprintf("preset %s | loop %s | %s | FPS %.0f", cfg.Preset, formatPeriod(cfg.Speed), state, ebiten.ActualFPS()),
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}
	if g.lastErr != nil {
		lines = append(lines, "Error: "+g.lastErr.Error())
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, config.HUDX, config.HUDY+i*16)
	}
}

// Layout reports the window size to the animation and renders at device
// resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := deviceScale()
	g.SetDevicePixelRatio(scale)
	if g.SetViewport(float64(outsideWidth), float64(outsideHeight)) {
		log.Debug().
			Int("width", outsideWidth).
			Int("height", outsideHeight).
			Float64("scale", scale).
			Msg("window resized")
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

func (g *Game) toggleRunning() {
	if g.anim.Running() {
		g.anim.Stop()
		g.status = "stopped"
		return
	}
	if err := g.anim.Start(); err != nil {
		g.fail("start", err)
		return
	}
	g.status = ""
}

func (g *Game) exportSnippet() {
	b, err := export.Snippet(g.anim.Config())
	if err != nil {
		g.fail("export", err)
		return
	}
	_, _ = os.Stdout.Write(b)
	g.status = "snippet written to stdout"
	log.Info().Str("preset", g.anim.Config().Preset).Msg("exported snippet")
}

func (g *Game) save() {
	if g.savePath == "" {
		g.status = "no -config path to save to"
		return
	}
	if err := config.Save(g.savePath, g.anim.Config().Options()); err != nil {
		g.fail("save", err)
		return
	}
	g.status = "saved " + g.savePath
	log.Info().Str("path", g.savePath).Msg("saved options")
}

func (g *Game) fail(what string, err error) {
	g.lastErr = fmt.Errorf("%s: %w", what, err)
	log.Warn().Err(err).Str("action", what).Msg("action failed")
}

// repeating is true on the first tick of a press and then periodically while
// the key is held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 1 {
			return s
		}
	}
	return 1
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
