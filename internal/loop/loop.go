// Package loop provides an animation.Host driven by an explicit clock: frames
// run when Pump is called and resize listeners fire on SetViewport.
package loop

import (
	"sort"

	"github.com/iburimskiy/wave-animation/internal/animation"
)

type frameRequest struct {
	id animation.FrameID
	fn func(float64)
}

// Host is an animation.Host with a manual clock. Frames run only when Pump is
// called. The window host pumps it once per tick; snapshots pump it once.
type Host struct {
	width, height float64
	ratio         float64
	now           float64

	nextFrame animation.FrameID
	frames    []frameRequest
	due       []frameRequest // batch being run by Pump

	nextListener int
	listeners    map[int]func()
}

// NewHost returns a host with the given viewport and device pixel ratio.
func NewHost(width, height, ratio float64) *Host {
	return &Host{
		width:     width,
		height:    height,
		ratio:     ratio,
		listeners: make(map[int]func()),
	}
}

// ViewportSize implements animation.Host.
func (h *Host) ViewportSize() (float64, float64) { return h.width, h.height }

// DevicePixelRatio implements animation.Host.
func (h *Host) DevicePixelRatio() float64 { return h.ratio }

// SetDevicePixelRatio changes the ratio reported to the animation. It takes
// effect on the next resize.
func (h *Host) SetDevicePixelRatio(ratio float64) { h.ratio = ratio }

// RequestFrame implements animation.Host.
func (h *Host) RequestFrame(fn func(timestampMs float64)) animation.FrameID {
	h.nextFrame++
	h.frames = append(h.frames, frameRequest{id: h.nextFrame, fn: fn})
	return h.nextFrame
}

// CancelFrame implements animation.Host. It also reaches callbacks of the
// batch Pump is running that have not run yet.
func (h *Host) CancelFrame(id animation.FrameID) {
	h.frames = without(h.frames, id)
	h.due = without(h.due, id)
}

func without(frames []frameRequest, id animation.FrameID) []frameRequest {
	for i, f := range frames {
		if f.id == id {
			return append(frames[:i], frames[i+1:]...)
		}
	}
	return frames
}

// OnResize implements animation.Host.
func (h *Host) OnResize(fn func()) func() {
	id := h.nextListener
	h.nextListener++
	h.listeners[id] = fn
	return func() {
		delete(h.listeners, id)
	}
}

// Now returns the clock in milliseconds.
func (h *Host) Now() float64 { return h.now }

// Advance moves the clock forward by ms.
func (h *Host) Advance(ms float64) { h.now += ms }

// SetTime sets the clock. It never moves backwards.
func (h *Host) SetTime(ms float64) {
	if ms > h.now {
		h.now = ms
	}
}

// Pending returns the number of scheduled frame callbacks.
func (h *Host) Pending() int { return len(h.frames) }

// Listeners returns the number of registered resize listeners.
func (h *Host) Listeners() int { return len(h.listeners) }

// Pump runs the frame callbacks scheduled before the call. Callbacks they
// schedule wait for the next Pump. It returns the number of callbacks run.
func (h *Host) Pump() int {
	h.due, h.frames = h.frames, nil
	n := 0
	for len(h.due) > 0 {
		f := h.due[0]
		h.due = h.due[1:]
		f.fn(h.now)
		n++
	}
	h.due = nil
	return n
}

// SetViewport changes the viewport and notifies resize listeners in
// registration order. It reports whether the size changed; listeners fire
// only then.
func (h *Host) SetViewport(width, height float64) bool {
	if width == h.width && height == h.height {
		return false
	}
	h.width, h.height = width, height
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := h.listeners[id]; ok {
			fn()
		}
	}
	return true
}
