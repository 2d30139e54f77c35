package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wave-animation/internal/animation"
	"github.com/iburimskiy/wave-animation/internal/colors"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// Source for DrawTriangles; the vertex colors do the tinting.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas is an offscreen ebiten image the animation strokes onto. The game
// blits it to the screen every Draw.
type Canvas struct {
	img      *ebiten.Image
	ctx      *context
	displayW float64
	displayH float64
	disposed bool
}

// NewCanvas returns a canvas with a width x height backing store.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.SetSize(width, height)
	return c
}

// Context implements animation.Canvas.
func (c *Canvas) Context() animation.Context {
	if c.disposed || c.ctx == nil {
		return nil
	}
	return c.ctx
}

// SetSize replaces the backing store and starts a fresh context with an
// identity transform.
func (c *Canvas) SetSize(width, height int) {
	if c.disposed {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(max(width, 1), max(height, 1))
	c.ctx = &context{img: c.img, state: drawState{lineWidth: 1}}
}

// SetDisplaySize implements animation.Canvas.
func (c *Canvas) SetDisplaySize(width, height float64) {
	c.displayW, c.displayH = width, height
}

// DisplaySize returns the logical size last set by the animation.
func (c *Canvas) DisplaySize() (width, height float64) {
	return c.displayW, c.displayH
}

// Image returns the backing store, or nil once disposed.
func (c *Canvas) Image() *ebiten.Image {
	if c.disposed {
		return nil
	}
	return c.img
}

// Dispose frees the backing store. Context returns nil afterwards.
func (c *Canvas) Dispose() {
	if c.disposed {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = nil
	c.ctx = nil
	c.disposed = true
}

type drawState struct {
	geo       ebiten.GeoM
	lineWidth float64
	stroke    colors.RGBA
}

type context struct {
	img   *ebiten.Image
	state drawState
	stack []drawState

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

func (x *context) ClearRect(left, top, width, height float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	corners := [4][2]float64{
		{left, top}, {left + width, top},
		{left, top + height}, {left + width, top + height},
	}
	for _, p := range corners {
		tx, ty := x.state.geo.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, tx), math.Max(maxX, tx)
		minY, maxY = math.Min(minY, ty), math.Max(maxY, ty)
	}
	bounds := x.img.Bounds()
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(bounds)
	if r.Empty() {
		return
	}
	if r == bounds {
		x.img.Clear()
		return
	}
	x.img.SubImage(r).(*ebiten.Image).Clear()
}

// concat makes op the innermost transform, so it applies to points before
// everything already on the matrix.
func (x *context) concat(op ebiten.GeoM) {
	op.Concat(x.state.geo)
	x.state.geo = op
}

func (x *context) Scale(sx, sy float64) {
	var op ebiten.GeoM
	op.Scale(sx, sy)
	x.concat(op)
}

func (x *context) Translate(tx, ty float64) {
	var op ebiten.GeoM
	op.Translate(tx, ty)
	x.concat(op)
}

func (x *context) Rotate(radians float64) {
	var op ebiten.GeoM
	op.Rotate(radians)
	x.concat(op)
}

func (x *context) Save() {
	x.stack = append(x.stack, x.state)
}

func (x *context) Restore() {
	n := len(x.stack)
	if n == 0 {
		return
	}
	x.state = x.stack[n-1]
	x.stack = x.stack[:n-1]
}

func (x *context) SetLineWidth(width float64) { x.state.lineWidth = width }

func (x *context) SetStrokeColor(c colors.RGBA) { x.state.stroke = c }

func (x *context) BeginPath() { x.path = vector.Path{} }

// Points are stored in device space; the path never sees the matrix.
func (x *context) MoveTo(px, py float64) {
	tx, ty := x.state.geo.Apply(px, py)
	x.path.MoveTo(float32(tx), float32(ty))
}

func (x *context) LineTo(px, py float64) {
	tx, ty := x.state.geo.Apply(px, py)
	x.path.LineTo(float32(tx), float32(ty))
}

func (x *context) Stroke() {
	g := x.state.geo
	a, b := g.Element(0, 0), g.Element(0, 1)
	c, d := g.Element(1, 0), g.Element(1, 1)
	scale := math.Sqrt(math.Abs(a*d - b*c))

	op := &vector.StrokeOptions{
		Width:    float32(x.state.lineWidth * scale),
		LineJoin: vector.LineJoinRound,
	}
	x.vertices, x.indices = x.path.AppendVerticesAndIndicesForStroke(x.vertices[:0], x.indices[:0], op)

	s := x.state.stroke
	r, gr, bl := float32(s.R)/0xff, float32(s.G)/0xff, float32(s.B)/0xff
	alpha := float32(clamp01(s.A))
	for i := range x.vertices {
		v := &x.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, gr, bl, alpha
	}
	x.img.DrawTriangles(x.vertices, x.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
