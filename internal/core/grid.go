package core

import "github.com/go-gl/mathgl/mgl64"

// FrameBuffer stores linear RGB pixel values in row-major order with the
// first row at the top of the image.
type FrameBuffer struct {
	W, H int
	data []mgl64.Vec3
}

// NewFrameBuffer allocates a buffer with the given dimensions.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, data: make([]mgl64.Vec3, w*h)}
}

// Pixels exposes the backing slice so callers can read/write values directly.
func (f *FrameBuffer) Pixels() []mgl64.Vec3 { return f.data }

// Size reports the buffer dimensions.
func (f *FrameBuffer) Size() Size { return Size{W: f.W, H: f.H} }

// Row returns the pixels of row y.
func (f *FrameBuffer) Row(y int) []mgl64.Vec3 {
	start := y * f.W
	return f.data[start : start+f.W]
}
