// Package raster renders the animation off screen with gg. It backs the
// -snapshot mode and the headless tests.
package raster

import (
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/wave-animation/internal/animation"
	"github.com/iburimskiy/wave-animation/internal/colors"
)

// Canvas is an in-memory canvas backed by a gg.Context.
type Canvas struct {
	dc            *gg.Context
	ctx           *context
	displayWidth  float64
	displayHeight float64
	lost          bool
}

// NewCanvas returns a canvas with a backing store of width x height pixels.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.ctx = &context{canvas: c, lineWidth: 1}
	c.SetSize(width, height)
	return c
}

// Context implements animation.Canvas.
func (c *Canvas) Context() animation.Context {
	if c.lost {
		return nil
	}
	return c.ctx
}

// SetSize implements animation.Canvas. The backing store is reallocated and
// all context state is reset.
func (c *Canvas) SetSize(width, height int) {
	c.dc = gg.NewContext(max(width, 1), max(height, 1))
	c.ctx.reset()
}

// SetDisplaySize implements animation.Canvas.
func (c *Canvas) SetDisplaySize(width, height float64) {
	c.displayWidth, c.displayHeight = width, height
}

// DisplaySize returns the logical size last set by the animation.
func (c *Canvas) DisplaySize() (width, height float64) {
	return c.displayWidth, c.displayHeight
}

// Bounds returns the backing store bounds in device pixels.
func (c *Canvas) Bounds() image.Rectangle {
	return c.dc.Image().Bounds()
}

// Image returns the backing store.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// WritePNG encodes the backing store as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the backing store to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Lose drops the drawing context, as a host tearing down the surface would.
func (c *Canvas) Lose() {
	c.lost = true
}

type context struct {
	canvas    *Canvas
	lineWidth float64
	saved     []float64
}

func (x *context) reset() {
	x.lineWidth = 1
	x.saved = x.saved[:0]
}

func (x *context) ClearRect(left, top, width, height float64) {
	dc := x.canvas.dc
	x0, y0 := dc.TransformPoint(left, top)
	x1, y1 := dc.TransformPoint(left+width, top+height)
	r := image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	)
	if dst, ok := dc.Image().(draw.Image); ok {
		draw.Draw(dst, r.Intersect(dst.Bounds()), image.Transparent, image.Point{}, draw.Src)
	}
}

func (x *context) Scale(sx, sy float64) { x.canvas.dc.Scale(sx, sy) }
func (x *context) Translate(tx, ty float64) { x.canvas.dc.Translate(tx, ty) }
func (x *context) Rotate(radians float64) { x.canvas.dc.Rotate(radians) }

func (x *context) Save() {
	x.canvas.dc.Push()
	x.saved = append(x.saved, x.lineWidth)
}

func (x *context) Restore() {
	if len(x.saved) == 0 {
		return
	}
	x.canvas.dc.Pop()
	x.lineWidth = x.saved[len(x.saved)-1]
	x.saved = x.saved[:len(x.saved)-1]
}

func (x *context) SetLineWidth(width float64) { x.lineWidth = width }

func (x *context) SetStrokeColor(c colors.RGBA) { x.canvas.dc.SetColor(c) }

func (x *context) BeginPath() { x.canvas.dc.ClearPath() }

func (x *context) MoveTo(px, py float64) { x.canvas.dc.MoveTo(px, py) }

func (x *context) LineTo(px, py float64) { x.canvas.dc.LineTo(px, py) }

// Stroke scales the line width by the current transform; gg applies the
// matrix to points only.
func (x *context) Stroke() {
	dc := x.canvas.dc
	ox, oy := dc.TransformPoint(0, 0)
	ux, uy := dc.TransformPoint(1, 0)
	dc.SetLineWidth(x.lineWidth * math.Hypot(ux-ox, uy-oy))
	dc.Stroke()
}
