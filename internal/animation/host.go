package animation

import "github.com/iburimskiy/wave-animation/internal/colors"

// Context is the 2D drawing surface the animation strokes onto. Coordinates
// are transformed by the current matrix, which Save and Restore push and pop.
type Context interface {
	ClearRect(x, y, width, height float64)
	Scale(sx, sy float64)
	Translate(x, y float64)
	Rotate(radians float64)
	Save()
	Restore()
	SetLineWidth(width float64)
	SetStrokeColor(c colors.RGBA)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Canvas is the drawable the animation is attached to. The animation borrows
// it; the caller keeps it alive until Destroy returns.
type Canvas interface {
	// Context returns nil when no drawing context is available.
	Context() Context
	// SetSize resizes the backing store in device pixels and resets the
	// context transform to identity.
	SetSize(width, height int)
	// SetDisplaySize sets the on-screen size in logical pixels.
	SetDisplaySize(width, height float64)
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Host is the environment the animation runs in: viewport, pixel density,
// frame scheduling and resize notification. All callbacks run on the host's
// single UI thread.
type Host interface {
	ViewportSize() (width, height float64)
	DevicePixelRatio() float64
	RequestFrame(fn func(timestampMs float64)) FrameID
	CancelFrame(id FrameID)
	OnResize(fn func()) (cancel func())
}
