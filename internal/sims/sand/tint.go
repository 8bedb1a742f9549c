package sand

import (
	"github.com/aquilax/go-perlin"

	"falling-sand/internal/core"
)

const (
	tintAlpha  = 2.0
	tintBeta   = 2.0
	tintOctave = 3
	tintFreq   = 0.15
	tintDrift  = 0.01
)

// Tinter varies the grain color around a base color using Perlin noise, so
// painted strokes show soft banding instead of a flat fill.
type Tinter struct {
	base   core.Color
	amount float64
	noise  *perlin.Perlin
	phase  float64
}

// NewTinter builds a tinter from the config's base color, tint amount and seed.
func NewTinter(cfg Config) *Tinter {
	return &Tinter{
		base:   cfg.Color,
		amount: cfg.Tint,
		noise:  perlin.NewPerlin(tintAlpha, tintBeta, tintOctave, cfg.Seed),
	}
}

// Color returns the grain color for a paint at (col, row).
func (t *Tinter) Color(col, row int) core.Color {
	if t.amount <= 0 {
		return t.base
	}
	n := t.noise.Noise2D(float64(col)*tintFreq+t.phase, float64(row)*tintFreq)
	shade := float32(1 + n*t.amount)
	return core.Color{
		R: clamp01(t.base.R * shade),
		G: clamp01(t.base.G * shade),
		B: clamp01(t.base.B * shade),
	}
}

// Advance drifts the noise field so successive strokes differ slightly.
func (t *Tinter) Advance() {
	t.phase += tintDrift
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
