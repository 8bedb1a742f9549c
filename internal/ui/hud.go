//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"log"
	"math"
	"strconv"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the "Tools" panel in the top-right corner of the window. It
// exposes the simulation's integer controls (the grid size preset) as -/+
// buttons.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	bounds   image.Rectangle
	snapshot core.ParameterSnapshot

	controls  []hudControlState
	intSetter core.IntParameterSetter

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeInt {
				continue
			}
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Captures reports whether the pointer at (x, y) is over the panel.
func (h *HUD) Captures(x, y int) bool {
	if h == nil {
		return false
	}
	return pointInRect(x, y, h.bounds)
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// panel. screenW is the current window width.
func (h *HUD) Update(screenW int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.bounds = toolsPanelRect(screenW, h.width, len(h.controls))
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel onto the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 || h.bounds.Empty() {
		return
	}
	height := h.bounds.Dy()
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.bounds.Min.X), float64(h.bounds.Min.Y))
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		if label, ok := h.snapshot.Lookup(state.control.Key + "_label"); ok {
			state.value = label.Value
		}
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !pointInRect(mx, my, h.bounds) {
		return
	}
	px := mx - h.bounds.Min.X
	py := my - h.bounds.Min.Y
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, py, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, py, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !h.canAdjust(state, direction) {
		return
	}
	target := h.target(state, direction)
	if target == state.intValue {
		return
	}
	if !h.intSetter.SetIntParameter(state.control.Key, target) {
		log.Printf("hud: %s rejected value %d", state.control.Key, target)
		return
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
}

func (h *HUD) target(state *hudControlState, direction int) int {
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin {
		if min := int(math.Round(state.control.Min)); target < min {
			target = min
		}
	}
	if state.control.HasMax {
		if max := int(math.Round(state.control.Max)); target > max {
			target = max
		}
	}
	return target
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || h.intSetter == nil || !state.hasValue {
		return false
	}
	return h.target(state, direction) != state.intValue
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Tools", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	infoY := headerY + infoSpacing
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	text.Draw(h.panel, "Change the size of the grid.", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	fillRect(h.panel, h.pixel, rect, bg)
	drawCentered(h.panel, rect, label, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		h.controls[i].top, h.controls[i].minusRect, h.controls[i].plusRect = controlRects(h.width, i)
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func fillRect(dst, pixel *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(pixel, op)
}

func drawCentered(dst *ebiten.Image, rect image.Rectangle, label string, col color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, col)
}
