package cloud

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

// bandRows is the number of rows a worker renders per task.
const bandRows = 8

// RenderOptions controls how frame buffer pixels map to fragment coordinates.
type RenderOptions struct {
	Camera Camera
	// Canvas is the size of the surface the buffer is displayed on. A zero
	// size means the buffer is displayed unscaled.
	Canvas core.Size
	// Fit replaces the camera's reference resolution with Canvas.
	Fit bool
	// Workers bounds the number of goroutines. Zero uses GOMAXPROCS.
	Workers int
}

// DefaultRenderOptions uses the default camera and all available CPUs.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Camera: DefaultCamera()}
}

// Render evaluates every pixel of fb for frame. Rows are split into bands and
// shaded concurrently; each pixel depends only on its own coordinate, frame
// and params, so the output does not depend on the worker count.
func Render(ctx context.Context, fb *core.FrameBuffer, frame core.Frame, p Params, opts RenderOptions) error {
	canvas := opts.Canvas
	if canvas.W <= 0 || canvas.H <= 0 {
		canvas = fb.Size()
	}
	cam := opts.Camera
	if opts.Fit {
		cam.Reference[0] = float64(canvas.W)
		cam.Reference[1] = float64(canvas.H)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sx := float64(canvas.W) / float64(fb.W)
	sy := float64(canvas.H) / float64(fb.H)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < fb.H; y0 += bandRows {
		if gctx.Err() != nil {
			break
		}
		y0 := y0
		y1 := min(y0+bandRows, fb.H)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				row := fb.Row(y)
				// Fragment Y grows upward; buffer rows grow downward.
				fragY := float64(canvas.H) - (float64(y)+0.5)*sy
				for x := range row {
					fragX := (float64(x) + 0.5) * sx
					row[x] = cam.Shade(fragX, fragY, frame.Time, p)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
