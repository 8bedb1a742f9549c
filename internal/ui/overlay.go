//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"falling-sand/internal/render"
	"falling-sand/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the "Performance" panel: frame rate, the telemetry warning,
// the gathering switch and, while gathering, the GPU usage chart.
type Overlay struct {
	sampler *telemetry.Sampler
	fps     *telemetry.History
	device  string

	bounds image.Rectangle
	button image.Rectangle

	pixel      *ebiten.Image
	chart      *ebiten.Image
	chartTaken uint64
}

// NewOverlay constructs the performance overlay. device may be empty when the
// GPU name is unknown.
func NewOverlay(sampler *telemetry.Sampler, fps *telemetry.History, device string) *Overlay {
	o := &Overlay{sampler: sampler, fps: fps, device: device}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	o.bounds, o.button = performanceRects(false)
	return o
}

// Captures reports whether the pointer at (x, y) is over the panel.
func (o *Overlay) Captures(x, y int) bool {
	if o == nil {
		return false
	}
	return pointInRect(x, y, o.bounds)
}

// Update handles the gathering switch (button click or the G key).
func (o *Overlay) Update() {
	toggle := inpututil.IsKeyJustPressed(ebiten.KeyG)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if pointInRect(mx, my, o.button) {
			toggle = true
		}
	}
	if toggle {
		o.sampler.Toggle()
		o.chartTaken = 0
		if o.chart != nil {
			o.chart.Dispose()
			o.chart = nil
		}
	}
	o.bounds, o.button = performanceRects(o.sampler.Gathering())
}

// Draw renders the panel onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	fillRect(screen, o.pixel, o.bounds, color.RGBA{R: 16, G: 16, B: 20, A: 230})

	y := panelPadding + headerBaseline
	text.Draw(screen, "Performance", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing
	text.Draw(screen, fmt.Sprintf("Framerate: %.1f FPS (avg %.1f)", o.fps.Last(), o.fps.Average()), face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	y += infoSpacing - 4
	text.Draw(screen, "WARNING: DATA COLLECTION WILL IMPACT PERFORMANCE", face, panelPadding, y, color.RGBA{R: 230, G: 170, B: 70, A: 255})

	fillRect(screen, o.pixel, o.button, color.RGBA{R: 54, G: 56, B: 64, A: 255})
	drawCentered(screen, o.button, gatherLabel(o.sampler.Gathering()), color.RGBA{R: 230, G: 230, B: 240, A: 255})

	if o.device != "" {
		text.Draw(screen, o.device, face, o.button.Max.X+buttonGap*2, o.button.Min.Y+labelBaseline-6, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}

	if !o.sampler.Gathering() {
		return
	}
	o.refreshChart()
	if o.chart == nil {
		text.Draw(screen, "Collecting GPU usage samples...", face, panelPadding, perfChartTop+labelBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, perfChartTop)
	screen.DrawImage(o.chart, op)
}

func (o *Overlay) refreshChart() {
	taken := o.sampler.Taken()
	if taken == o.chartTaken {
		return
	}
	o.chartTaken = taken
	w, h := chartSize()
	img, err := render.PlotUtilization(o.sampler.History().Values(), w, h)
	if err != nil {
		log.Printf("overlay: %v", err)
		return
	}
	if img == nil {
		return
	}
	if o.chart != nil {
		o.chart.Dispose()
	}
	o.chart = ebiten.NewImageFromImage(img)
}
