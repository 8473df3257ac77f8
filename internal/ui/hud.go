//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/zzkarna/optimized-cloud-generator/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Target is the parameter surface the HUD reads from. Setters are discovered
// through the core setter interfaces.
type Target interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the cloud view.
type HUD struct {
	target     Target
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	colorSetter  core.ColorParameterSetter
	paste        func() string
	panelOffsetX int
	title        string
	status       string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for target. paste supplies clipboard text when a
// color swatch is clicked and may be nil.
func NewHUD(target Target, width int, paste func() string) *HUD {
	h := &HUD{target: target, width: max(width, 0), paste: paste}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(target)
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	h.intSetter, _ = target.(core.IntParameterSetter)
	h.floatSetter, _ = target.(core.FloatParameterSetter)
	h.colorSetter, _ = target.(core.ColorParameterSetter)
	return h
}

// Width reports the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.target == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.target.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(target Target) string {
	if target == nil || target.Name() == "" {
		return "Controls"
	}
	name := target.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
		case core.ParamTypeColor:
			rgb, ok := parseHex(param.Value)
			if !ok {
				continue
			}
			state.swatch = rgb
			state.value = param.Value
		default:
			continue
		}
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if state.control.Type == core.ParamTypeColor {
			if pointInRect(px, my, state.swatchRect) {
				h.pasteColor(state)
				return
			}
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) pasteColor(state *hudControlState) {
	if h.colorSetter == nil || h.paste == nil {
		return
	}
	value := strings.TrimSpace(h.paste())
	if value == "" {
		h.status = "clipboard is empty"
		return
	}
	if err := h.colorSetter.SetColorParameter(state.control.Key, value); err != nil {
		h.status = fmt.Sprintf("%s: not a color", state.control.Label)
		return
	}
	h.status = fmt.Sprintf("%s set from clipboard", state.control.Label)
}

// nextValue returns the stepped value for a -/+ click and whether it is allowed.
func (h *HUD) nextValue(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 {
		return 0, false
	}
	step := state.control.Step
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(math.Round(step), 1)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := state.floatValue + float64(direction)*step
	if state.control.HasMin && direction < 0 && next < state.control.Min-1e-9 {
		if state.floatValue <= state.control.Min+1e-9 {
			return 0, false
		}
		next = state.control.Min
	}
	if state.control.HasMax && direction > 0 && next > state.control.Max+1e-9 {
		if state.floatValue >= state.control.Max-1e-9 {
			return 0, false
		}
		next = state.control.Max
	}
	return next, true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	next, ok := h.nextValue(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(math.Round(next))
		if h.intSetter.SetIntParameter(state.control.Key, v) {
			state.floatValue = float64(v)
			state.value = strconv.Itoa(v)
		}
	case core.ParamTypeFloat:
		// Snap to the step grid so repeated clicks do not accumulate drift.
		if step := state.control.Step; step > 0 {
			next = math.Round(next/step) * step
		}
		if h.floatSetter.SetFloatParameter(state.control.Key, next) {
			state.floatValue = next
			state.value = formatFloat(state.control, next)
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, headerColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, mutedColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		left := state.minusRect.Min.X
		if state.control.Type == core.ParamTypeColor {
			left = state.swatchRect.Min.X
			h.drawSwatch(state)
		} else {
			h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
			h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, left-buttonGap-valueWidth, labelY, valueColor)
	}
	if h.status != "" {
		y := h.lastHeight - panelPadding
		text.Draw(h.panel, h.status, face, panelPadding, y, mutedColor)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	_, ok := h.nextValue(state, direction)
	return ok
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, buttonText
	if !enabled {
		bg, fg = buttonDisabled, mutedColor
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) drawSwatch(state *hudControlState) {
	h.fillRect(state.swatchRect, buttonColor)
	if !state.hasValue {
		return
	}
	h.fillRect(state.swatchRect.Inset(2), state.swatch)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
		h.controls[i].swatchRect = image.Rect(minusRect.Min.X, buttonY, plusRect.Max.X, buttonY+buttonSize)
	}
}

// PanelHeight is the height needed to show every control of target.
func PanelHeight(target Target) int {
	n := 0
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		n = len(provider.ParameterControls())
	}
	return controlsTop + n*lineHeight + statusHeight
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func parseHex(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	swatch     color.RGBA
	hasValue   bool

	top        int
	minusRect  image.Rectangle
	plusRect   image.Rectangle
	swatchRect image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 36
	statusHeight   = 28
	controlsTop    = panelPadding + headerBaseline + 14
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonDisabled  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)
