//go:build ebiten

package app

import (
	"time"

	"falling-sand/internal/input"
	"falling-sand/internal/render"
	"falling-sand/internal/telemetry"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sandbox simulation to the ebiten.Game interface.
type Game struct {
	world   Sandbox
	tint    Tint
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	sampler *telemetry.Sampler
	fps     *telemetry.History
	drag    input.Drag

	paused   bool
	tickOnce bool
	seed     int64

	winW, winH int
}

// New constructs a Game for the provided world.
func New(world Sandbox, tint Tint, cfg *Config) *Game {
	size := world.Size()
	fps := telemetry.NewHistory(telemetry.FramerateHistory)
	sampler := telemetry.NewSampler(telemetry.NewSource(), cfg.PollHz, telemetry.FramerateHistory)
	return &Game{
		world:   world,
		tint:    tint,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, cfg.HUDWidth),
		overlay: ui.NewOverlay(sampler, fps, telemetry.DeviceName()),
		sampler: sampler,
		fps:     fps,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.drag.Release()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	g.hud.Update(g.winW)
	g.overlay.Update()
	g.handlePointer()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}

	g.sampler.Tick(time.Now())
	g.fps.Push(ebiten.ActualFPS())
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	if g.hud.Captures(mx, my) || g.overlay.Captures(mx, my) {
		g.drag.Release()
		return
	}
	size := g.world.Size()
	col, row := input.MapPointerToGrid(float64(mx), float64(my), float64(g.winW), float64(g.winH), size.W, size.H)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.drag.Press(col, row)
		g.world.Paint(col, row, g.tint.Color(col, row))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.drag.Active():
		if g.drag.Move(col, row) {
			input.BrushPaintFunc(g.world, col, row, g.tint.Color)
			g.tint.Advance()
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.drag.Release()
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.world.Erase(col, row)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.winW, g.winH)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size so pointer mapping and blitting use the real
// pixel dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.winW, g.winH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
