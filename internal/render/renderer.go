//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

// FramePainter uploads a software-rendered frame buffer into an ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for a buffer of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Upload copies fb into the painter image. Buffers of another size are ignored.
func (fp *FramePainter) Upload(fb *core.FrameBuffer) {
	if fb.W != fp.w || fb.H != fp.h {
		return
	}
	fillRGBA(fp.buf, fb.Pixels())
	fp.img.WritePixels(fp.buf)
}

// Blit draws the last uploaded frame scaled by sx, sy.
func (fp *FramePainter) Blit(dst *ebiten.Image, sx, sy float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
