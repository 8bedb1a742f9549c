package app

import (
	"testing"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

var (
	_ Sandbox = (*sand.World)(nil)
	_ Tint    = (*sand.Tinter)(nil)
)

func TestSandboxFromRegistry(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	if !ok {
		t.Fatalf("sand simulation not registered")
	}
	sim := factory(NewConfig().SimConfig())
	world, ok := sim.(Sandbox)
	if !ok {
		t.Fatalf("%T does not implement Sandbox", sim)
	}
	if s := world.Size(); s.W != 300 || s.H != 200 {
		t.Fatalf("default preset size = %dx%d, want 300x200", s.W, s.H)
	}
	world.Paint(5, 5, sand.SandColor)
	world.Clear()
	for i, k := range world.Cells() {
		if k != uint8(sand.Empty) {
			t.Fatalf("cell %d not empty after Clear", i)
		}
	}
}
