package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// WritePNG encodes img as PNG to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// frameVerb matches an integer printf verb such as %d or %04d.
var frameVerb = regexp.MustCompile(`%0?\d*d`)

// HasFrameVerb reports whether pattern contains an integer verb for the frame
// index.
func HasFrameVerb(pattern string) bool { return frameVerb.MatchString(pattern) }

// SequencePath returns the file name of frame i of a sequence. The first
// integer verb in pattern is formatted with i; a pattern without one gets the
// zero-padded index inserted before the extension. Other '%' characters are
// kept literally.
func SequencePath(pattern string, i, total int) string {
	if loc := frameVerb.FindStringIndex(pattern); loc != nil {
		return pattern[:loc[0]] + fmt.Sprintf(pattern[loc[0]:loc[1]], i) + pattern[loc[1]:]
	}
	width := len(fmt.Sprint(max(total-1, 0)))
	ext := filepath.Ext(pattern)
	return fmt.Sprintf("%s_%0*d%s", strings.TrimSuffix(pattern, ext), width, i, ext)
}

// GIFWriter collects frames of an animated GIF.
type GIFWriter struct {
	anim  gif.GIF
	frame time.Duration
}

// NewGIFWriter returns a writer for frames lasting frame each. GIF delays are
// whole hundredths of a second, so each frame's delay is rounded from the
// running total and the average rate matches frame exactly.
func NewGIFWriter(frame time.Duration) *GIFWriter {
	if frame <= 0 {
		frame = 40 * time.Millisecond
	}
	return &GIFWriter{frame: frame}
}

// Add quantizes img to the Plan 9 palette with Floyd-Steinberg dithering and
// appends it.
func (w *GIFWriter) Add(img image.Image) {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), img, img.Bounds().Min)
	n := len(w.anim.Image)
	w.anim.Image = append(w.anim.Image, p)
	w.anim.Delay = append(w.anim.Delay, centiseconds(time.Duration(n+1)*w.frame)-centiseconds(time.Duration(n)*w.frame))
}

func centiseconds(d time.Duration) int {
	return int(d.Round(10*time.Millisecond) / (10 * time.Millisecond))
}

// Len reports the number of frames collected.
func (w *GIFWriter) Len() int { return len(w.anim.Image) }

// Encode writes the animation to out.
func (w *GIFWriter) Encode(out io.Writer) error {
	if len(w.anim.Image) == 0 {
		return fmt.Errorf("gif has no frames")
	}
	return gif.EncodeAll(out, &w.anim)
}

// Save writes the animation to path.
func (w *GIFWriter) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := w.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
