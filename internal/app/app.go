//go:build ebiten

package app

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/zzkarna/optimized-cloud-generator/internal/cloud"
	"github.com/zzkarna/optimized-cloud-generator/internal/core"
	"github.com/zzkarna/optimized-cloud-generator/internal/render"
	"github.com/zzkarna/optimized-cloud-generator/internal/scene"
	"github.com/zzkarna/optimized-cloud-generator/internal/shader"
	"github.com/zzkarna/optimized-cloud-generator/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the parameter panel right of the view.
const PanelWidth = 280

// softwareFPS caps how often the CPU backend re-renders.
const softwareFPS = 15

// Game adapts a cloud scene to the ebiten.Game interface.
type Game struct {
	scene   *scene.Scene
	hud     *ui.HUD
	overlay *ui.Overlay

	backend core.Backend
	shader  *ebiten.Shader
	view    *ebiten.Image

	painter  *render.FramePainter
	fb       *core.FrameBuffer
	cpuTick  *core.FixedStep
	scale    int
	workers  int
	cpuDirty bool

	shaderOut string
	message   string
	msgUntil  time.Time
}

// New constructs a Game for sc. Shader compilation failures are returned.
func New(sc *scene.Scene, cfg *Config) (*Game, error) {
	backend, err := core.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	sh, err := ebiten.NewShader(shader.Source())
	if err != nil {
		return nil, fmt.Errorf("compile cloud shader: %w", err)
	}
	initClipboard()

	size := sc.Size()
	scale := max(cfg.Scale, 1)
	fbW, fbH := max(size.W/scale, 1), max(size.H/scale, 1)
	g := &Game{
		scene:     sc,
		overlay:   ui.NewOverlay(),
		backend:   backend,
		shader:    sh,
		view:      ebiten.NewImage(size.W, size.H),
		painter:   render.NewFramePainter(fbW, fbH),
		fb:        core.NewFrameBuffer(fbW, fbH),
		cpuTick:   core.NewFixedStep(softwareFPS),
		scale:     scale,
		workers:   max(cfg.Workers, 1),
		cpuDirty:  true,
		shaderOut: cfg.ShaderOut,
	}
	g.hud = ui.NewHUD(sc, PanelWidth, clipboardReadText)
	return g, nil
}

// Update handles per-frame logic and advances scene time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.SetPaused(!g.scene.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reset()
		g.cpuDirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.toggleBackend()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyShader()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.exportShader()
	}

	before := g.scene.Params()
	g.hud.Update(g.scene.Size().W)
	if g.scene.Params() != before {
		g.cpuDirty = true
	}

	g.scene.Step(core.FrameDuration(ebiten.TPS()))
	if g.backend == core.BackendSoftware {
		if err := g.renderSoftware(); err != nil {
			return err
		}
	}

	if g.message != "" && time.Now().After(g.msgUntil) {
		g.message = ""
	}
	g.overlay.Update(ui.Stats{
		Frame:   g.scene.Frame(),
		Backend: g.backend,
		Paused:  g.scene.Paused(),
		Message: g.message,
	})
	return nil
}

func (g *Game) renderSoftware() error {
	if !g.cpuTick.ShouldStep() {
		return nil
	}
	// A paused scene only needs a new frame after a parameter change.
	if g.scene.Paused() && !g.cpuDirty {
		return nil
	}
	opts := g.scene.RenderOptions(g.workers)
	if err := cloud.Render(context.Background(), g.fb, g.scene.Frame(), g.scene.Params(), opts); err != nil {
		return fmt.Errorf("software render: %w", err)
	}
	g.painter.Upload(g.fb)
	g.cpuDirty = false
	return nil
}

func (g *Game) toggleBackend() {
	if g.backend == core.BackendShader {
		g.backend = core.BackendSoftware
		g.cpuDirty = true
	} else {
		g.backend = core.BackendShader
	}
	g.notify("backend: " + g.backend.String())
}

func (g *Game) copyShader() {
	if !clipboardWriteText(string(shader.Export())) {
		g.notify("clipboard unavailable")
		return
	}
	g.notify("shader source copied")
}

func (g *Game) exportShader() {
	if err := shader.WriteFile(g.shaderOut); err != nil {
		ErrorLogger.Printf("export shader: %v", err)
		g.notify("export failed")
		return
	}
	InfoLogger.Printf("shader source written to %s", g.shaderOut)
	g.notify("saved " + g.shaderOut)
}

func (g *Game) notify(msg string) {
	g.message = msg
	g.msgUntil = time.Now().Add(3 * time.Second)
}

// Draw renders the current cloud frame, panel and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.scene.Size()
	switch g.backend {
	case core.BackendSoftware:
		g.view.Clear()
		w, h := g.painter.Size()
		g.painter.Blit(g.view, float64(size.W)/float64(w), float64(size.H)/float64(h))
	default:
		u := shader.FromParams(g.scene.Params(), g.scene.Frame(), g.scene.Resolution())
		op := &ebiten.DrawRectShaderOptions{Uniforms: u.Map()}
		g.view.DrawRectShader(size.W, size.H, g.shader, op)
	}
	screen.DrawImage(g.view, nil)

	_, height := g.Layout(0, 0)
	g.hud.Draw(screen, size.W, height)
	view := screen.SubImage(image.Rect(0, 0, size.W, size.H)).(*ebiten.Image)
	g.overlay.Draw(view)
}

// Layout returns the logical screen size: the view plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size()
	return s.W + g.hud.Width(), max(s.H, ui.PanelHeight(g.scene))
}
