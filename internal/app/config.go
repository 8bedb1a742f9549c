package app

import (
	"flag"
	"strconv"
)

// Minimum window dimensions; small presets are stretched to fill them.
const (
	MinWindowWidth  = 800
	MinWindowHeight = 600
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Preset int
	W      int
	H      int
	Scale  int
	TPS    int
	Seed   int64
	Tint   float64

	// PollHz caps how often GPU utilization is queried while gathering.
	PollHz   int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "sand",
		Preset:   2,
		Scale:    3,
		TPS:      60,
		Seed:     42,
		Tint:     0.08,
		PollHz:   4,
		HUDWidth: 260,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Preset, "preset", c.Preset, "grid size preset index (0=30x30, 1=200x150, 2=300x200)")
	fs.IntVar(&c.W, "w", c.W, "grid width (overrides -preset when set with -h)")
	fs.IntVar(&c.H, "h", c.H, "grid height (overrides -preset when set with -w)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Tint, "tint", c.Tint, "grain color variation (0 disables)")
	fs.IntVar(&c.PollHz, "poll-hz", c.PollHz, "GPU utilization samples per second while gathering")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the tools panel in pixels (0 hides it)")
}

// SimConfig converts the flags into the key/value map consumed by simulation
// factories.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"preset": strconv.Itoa(c.Preset),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"tint":   strconv.FormatFloat(c.Tint, 'g', -1, 64),
	}
	if c.W > 0 && c.H > 0 {
		m["w"] = strconv.Itoa(c.W)
		m["h"] = strconv.Itoa(c.H)
	}
	return m
}

// WindowSize returns the initial window size for a grid of gridW×gridH cells.
func (c *Config) WindowSize(gridW, gridH int) (int, int) {
	scale := c.Scale
	if scale < 1 {
		scale = 1
	}
	w, h := gridW*scale, gridH*scale
	if w < MinWindowWidth {
		w = MinWindowWidth
	}
	if h < MinWindowHeight {
		h = MinWindowHeight
	}
	return w, h
}
