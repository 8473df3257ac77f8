//go:build ebiten

package ui

import (
	"fmt"

	"github.com/zzkarna/optimized-cloud-generator/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Stats is the per-frame state shown by the overlay.
type Stats struct {
	Frame   core.Frame
	Backend core.Backend
	Paused  bool
	Message string
}

// Overlay draws frame statistics on top of the cloud view.
type Overlay struct {
	visible bool
	stats   Stats
}

// NewOverlay constructs a new overlay instance. It starts visible.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles visibility on F1 and records the latest stats.
func (o *Overlay) Update(stats Stats) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
	o.stats = stats
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	state := "running"
	if o.stats.Paused {
		state = "paused"
	}
	msg := fmt.Sprintf("FPS %0.1f  TPS %0.1f\nt=%0.2fs frame %d (%s)\nbackend: %s  [B] switch\n",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		o.stats.Frame.Time, o.stats.Frame.Index, state, o.stats.Backend)
	if o.stats.Message != "" {
		msg += o.stats.Message + "\n"
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
