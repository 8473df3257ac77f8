// Package scene is the parameter store of the cloud viewer. It owns the
// current cloud parameters and the frame clock, and hands out value snapshots
// to whichever backend renders the next frame.
package scene

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zzkarna/optimized-cloud-generator/internal/cloud"
	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

// Scene holds the mutable state shared by the control panel and the renderer.
// It is not safe for concurrent use; renderers receive copies via Params.
type Scene struct {
	cfg    Config
	clock  core.Clock
	paused bool
}

// New returns a scene starting at time zero.
func New(cfg Config) *Scene {
	if cfg.Width <= 0 {
		cfg.Width = cloud.ReferenceWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = cloud.ReferenceHeight
	}
	return &Scene{cfg: cfg}
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "clouds" }

// Size reports the canvas dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns a copy of the current configuration.
func (s *Scene) Config() Config { return s.cfg }

// Params returns a snapshot of the cloud parameters.
func (s *Scene) Params() cloud.Params { return s.cfg.Params }

// Frame reports the frame the next render should show.
func (s *Scene) Frame() core.Frame { return s.clock.Frame() }

// Step advances the clock by dt unless paused. The frame index advances even
// while paused so every refresh stays distinguishable.
func (s *Scene) Step(dt time.Duration) core.Frame {
	if s.paused {
		dt = 0
	}
	return s.clock.Advance(dt)
}

// Reset rewinds the clock to zero.
func (s *Scene) Reset() { s.clock.Reset() }

// Paused reports whether time is frozen.
func (s *Scene) Paused() bool { return s.paused }

// SetPaused freezes or resumes time.
func (s *Scene) SetPaused(paused bool) { s.paused = paused }

// Fit reports whether fragment coordinates are divided by the canvas size.
func (s *Scene) Fit() bool { return s.cfg.Fit }

// SetFit switches between the fixed reference resolution and the canvas size.
func (s *Scene) SetFit(fit bool) { s.cfg.Fit = fit }

// Resolution returns the size fragment coordinates are divided by.
func (s *Scene) Resolution() mgl64.Vec2 {
	if s.cfg.Fit {
		return mgl64.Vec2{float64(s.cfg.Width), float64(s.cfg.Height)}
	}
	return mgl64.Vec2{cloud.ReferenceWidth, cloud.ReferenceHeight}
}

// RenderOptions describes the canvas for the software renderer.
func (s *Scene) RenderOptions(workers int) cloud.RenderOptions {
	opts := cloud.DefaultRenderOptions()
	opts.Canvas = s.Size()
	opts.Fit = s.cfg.Fit
	opts.Workers = workers
	return opts
}

func errUnknownColor(key string) error {
	return fmt.Errorf("unknown color parameter %q", key)
}
