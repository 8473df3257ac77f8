// Command cloudrender renders cloud frames on the CPU and writes them as PNG
// files or an animated GIF. It can also export the Kage shader source.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/zzkarna/optimized-cloud-generator/internal/cloud"
	"github.com/zzkarna/optimized-cloud-generator/internal/core"
	"github.com/zzkarna/optimized-cloud-generator/internal/render"
	"github.com/zzkarna/optimized-cloud-generator/internal/scene"
	"github.com/zzkarna/optimized-cloud-generator/internal/shader"
)

type options struct {
	width     int
	height    int
	scale     int
	frames    int
	fps       int
	workers   int
	fit       bool
	out       string
	shaderOut string
	params    string
	overrides scene.Overrides
}

func defaultOptions() options {
	return options{
		scale:   1,
		frames:  1,
		fps:     30,
		workers: runtime.NumCPU(),
		out:     "clouds.png",
	}
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.IntVar(&o.width, "w", o.width, "canvas width in pixels (0 keeps 800 or the -params value)")
	fs.IntVar(&o.height, "h", o.height, "canvas height in pixels (0 keeps 600 or the -params value)")
	fs.IntVar(&o.scale, "scale", o.scale, "divide the canvas by this factor for the output image")
	fs.IntVar(&o.frames, "frames", o.frames, "number of frames to render")
	fs.IntVar(&o.fps, "fps", o.fps, "frames per second of scene time")
	fs.IntVar(&o.workers, "workers", o.workers, "number of worker goroutines")
	fs.BoolVar(&o.fit, "fit", o.fit, "map fragment coordinates by canvas size instead of 800x600")
	fs.StringVar(&o.out, "out", o.out, "output file: .png (sequence with %d or index suffix) or .gif; empty to skip")
	fs.StringVar(&o.shaderOut, "shader-out", o.shaderOut, "also write the Kage shader source to this file")
	fs.StringVar(&o.params, "params", o.params, "file of key=value parameter lines")
	fs.Var(&o.overrides, "set", "parameter override in key=value form (repeatable)")
}

func (o options) sceneConfig() (scene.Config, error) {
	return scene.Resolve(o.params, o.width, o.height, o.fit, o.overrides)
}

func main() {
	os.Exit(cloudrender())
}

func cloudrender() int {
	opts := defaultOptions()
	opts.bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Printf("cloudrender: %v", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, opts options) error {
	if opts.shaderOut != "" {
		if err := shader.WriteFile(opts.shaderOut); err != nil {
			return err
		}
		log.Printf("shader source written to %s", opts.shaderOut)
	}
	if opts.out == "" {
		return nil
	}

	cfg, err := opts.sceneConfig()
	if err != nil {
		return err
	}
	sc := scene.New(cfg)
	scale := max(opts.scale, 1)
	fb := core.NewFrameBuffer(cfg.Width/scale, cfg.Height/scale)
	renderOpts := sc.RenderOptions(max(opts.workers, 1))
	frames := max(opts.frames, 1)
	step := core.FrameDuration(opts.fps)

	var anim *render.GIFWriter
	if strings.EqualFold(filepath.Ext(opts.out), ".gif") {
		anim = render.NewGIFWriter(step)
	}
	sequence := frames > 1 || render.HasFrameVerb(opts.out)

	log.Printf("rendering %d frame(s) at %dx%d (canvas %dx%d, %d workers)",
		frames, fb.W, fb.H, cfg.Width, cfg.Height, renderOpts.Workers)
	start := time.Now()
	for i := 0; i < frames; i++ {
		frame := sc.Frame()
		if err := cloud.Render(ctx, fb, frame, sc.Params(), renderOpts); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		img := render.ToRGBA(fb)
		switch {
		case anim != nil:
			anim.Add(img)
		case sequence:
			if err := render.WritePNG(render.SequencePath(opts.out, i, frames), img); err != nil {
				return err
			}
		default:
			if err := render.WritePNG(opts.out, img); err != nil {
				return err
			}
		}
		sc.Step(step)
	}
	if anim != nil {
		if err := anim.Save(opts.out); err != nil {
			return err
		}
	}
	log.Printf("wrote %s in %s", opts.out, time.Since(start).Round(time.Millisecond))
	return nil
}
