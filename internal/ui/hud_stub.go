//go:build !ebiten

package ui

import "github.com/zzkarna/optimized-cloud-generator/internal/core"

// Target is the parameter surface the HUD reads from.
type Target interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Target, int, func() string) *HUD { return nil }

// Width is always zero headless.
func (h *HUD) Width() int { return 0 }

// PanelHeight is always zero headless.
func PanelHeight(Target) int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
