//go:build !ebiten

package ui

import "github.com/zzkarna/optimized-cloud-generator/internal/core"

// Stats mirrors the GUI build so callers compile headless.
type Stats struct {
	Frame   core.Frame
	Backend core.Backend
	Paused  bool
	Message string
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(Stats) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
