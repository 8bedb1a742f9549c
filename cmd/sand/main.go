//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	world, ok := sim.(app.Sandbox)
	if !ok {
		log.Fatalf("sim %q cannot be painted", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	simCfg := sand.FromMap(cfg.SimConfig())
	game := app.New(world, sand.NewTinter(simCfg), cfg)
	size := world.Size()

	ebiten.SetWindowTitle("Falling Sand Simulator")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowSize(size.W, size.H))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
