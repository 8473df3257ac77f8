package render

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

// fillRGBA converts linear frame buffer colors into opaque RGBA pixels in buf,
// clamping each channel to [0, 1] the way a fixed-point render target does.
func fillRGBA(buf []byte, pixels []mgl64.Vec3) {
	for i, c := range pixels {
		base := i * 4
		buf[base+0] = quantize(c[0])
		buf[base+1] = quantize(c[1])
		buf[base+2] = quantize(c[2])
		buf[base+3] = 0xff
	}
}

func quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 255))
}

// ToRGBA returns the frame buffer as an 8-bit image.
func ToRGBA(fb *core.FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	fillRGBA(img.Pix, fb.Pixels())
	return img
}
