package app

import (
	"falling-sand/internal/core"
	"falling-sand/internal/input"
)

// Sandbox is the simulation surface the host drives: stepping, painting,
// erasing and the color view used by the renderer.
type Sandbox interface {
	core.Sim
	input.Painter
	Erase(col, row int)
	Clear()
	Colors() []core.Color
}

// Tint supplies the color of newly painted grains.
type Tint interface {
	Color(col, row int) core.Color
	Advance()
}
