package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/wave-animation/internal/animation"
)

func TestHostPumpDefersNestedRequests(t *testing.T) {
	h := NewHost(100, 100, 1)
	var calls []float64
	var loop func(float64)
	loop = func(ts float64) {
		calls = append(calls, ts)
		h.RequestFrame(loop)
	}
	h.RequestFrame(loop)

	h.Advance(16)
	assert.Equal(t, 1, h.Pump())
	h.Advance(16)
	assert.Equal(t, 1, h.Pump())
	assert.Equal(t, []float64{16, 32}, calls)
	assert.Equal(t, 1, h.Pending())
}

func TestHostCancelFrame(t *testing.T) {
	h := NewHost(100, 100, 1)
	ran := false
	id := h.RequestFrame(func(float64) { ran = true })
	h.CancelFrame(id)
	assert.Zero(t, h.Pump())
	assert.False(t, ran)
}

func TestHostResizeListeners(t *testing.T) {
	h := NewHost(100, 100, 1)
	var order []int
	cancelA := h.OnResize(func() { order = append(order, 1) })
	h.OnResize(func() { order = append(order, 2) })

	assert.True(t, h.SetViewport(200, 100))
	assert.Equal(t, []int{1, 2}, order)

	cancelA()
	h.SetViewport(300, 100)
	assert.Equal(t, []int{1, 2, 2}, order)
	assert.Equal(t, 1, h.Listeners())
	w, _ := h.ViewportSize()
	assert.Equal(t, 300.0, w)
}

func TestSetViewportUnchangedSkipsListeners(t *testing.T) {
	h := NewHost(100, 100, 1)
	calls := 0
	h.OnResize(func() { calls++ })
	assert.False(t, h.SetViewport(100, 100))
	assert.Zero(t, calls)
}

func TestSetTimeIsMonotonic(t *testing.T) {
	h := NewHost(10, 10, 1)
	h.SetTime(50)
	h.SetTime(20)
	assert.Equal(t, 50.0, h.Now())
	h.Advance(5)
	assert.Equal(t, 55.0, h.Now())
}

func TestCancelFrameDuringPump(t *testing.T) {
	h := NewHost(100, 100, 1)
	var ran []string
	var second animation.FrameID
	h.RequestFrame(func(float64) {
		ran = append(ran, "first")
		h.CancelFrame(second)
	})
	second = h.RequestFrame(func(float64) { ran = append(ran, "second") })
	h.RequestFrame(func(float64) { ran = append(ran, "third") })

	assert.Equal(t, 2, h.Pump())
	assert.Equal(t, []string{"first", "third"}, ran)
	assert.Zero(t, h.Pending())
}
