package sand

import (
	"fmt"
	"strconv"
	"strings"

	"falling-sand/internal/core"
)

// Preset is one of the selectable grid sizes.
type Preset struct {
	Label  string
	Width  int
	Height int
}

var presets = []Preset{
	{Label: "30 x 30", Width: 30, Height: 30},
	{Label: "200 x 150", Width: 200, Height: 150},
	{Label: "300 x 200", Width: 300, Height: 200},
}

// DefaultPreset indexes the grid size used at startup.
const DefaultPreset = 2

// Presets returns a copy of the selectable grid sizes.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// PresetIndex returns the index of the preset matching w×h, or -1.
func PresetIndex(w, h int) int {
	for i, p := range presets {
		if p.Width == w && p.Height == h {
			return i
		}
	}
	return -1
}

// SandColor is the default grain color.
var SandColor = core.Color{R: 1.0, G: 0.85, B: 0.55}

// Config controls the sand simulation dimensions and grain coloring.
type Config struct {
	Width  int
	Height int

	// Color is the base grain color handed to Paint by the host.
	Color core.Color
	// Tint scales the noise-driven color variation; 0 disables it.
	Tint float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	p := presets[DefaultPreset]
	return Config{
		Width:  p.Width,
		Height: p.Height,
		Color:  SandColor,
		Tint:   0.08,
		Seed:   42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// A preset is applied before explicit w/h overrides.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok {
		if p, err := ParsePreset(v); err == nil {
			c.Width, c.Height = p.Width, p.Height
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tint"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Tint = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ParsePreset accepts either a preset index ("0".."2") or a size such as
// "200x150" that matches one of the presets.
func ParsePreset(v string) (Preset, error) {
	v = strings.TrimSpace(v)
	if idx, err := strconv.Atoi(v); err == nil {
		if idx < 0 || idx >= len(presets) {
			return Preset{}, fmt.Errorf("preset index %d out of range [0,%d]", idx, len(presets)-1)
		}
		return presets[idx], nil
	}
	compact := strings.ReplaceAll(strings.ToLower(v), " ", "")
	for _, p := range presets {
		if compact == fmt.Sprintf("%dx%d", p.Width, p.Height) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", v)
}
