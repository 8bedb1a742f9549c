package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/input"
	"falling-sand/internal/sims/sand"
)

// scenario seeds a world and optionally feeds it grains before every tick.
type scenario struct {
	name  string
	setup func(w *sand.World, rng *core.RNG)
	feed  func(w *sand.World, rng *core.RNG, tick int)
}

var scenarios = map[string]scenario{
	"column": {
		name: "column",
		setup: func(w *sand.World, _ *core.RNG) {
			size := w.Size()
			for row := 0; row < size.H/2; row++ {
				w.Paint(size.W/2, row, sand.SandColor)
			}
		},
	},
	"pile": {
		name: "pile",
		setup: func(w *sand.World, _ *core.RNG) {
			size := w.Size()
			for row := 0; row < size.H/3; row++ {
				for col := size.W / 4; col < size.W*3/4; col++ {
					w.Paint(col, row, sand.SandColor)
				}
			}
		},
	},
	"pour": {
		name: "pour",
		feed: func(w *sand.World, _ *core.RNG, tick int) {
			if tick%2 != 0 {
				return
			}
			input.BrushPaint(w, w.Size().W/2, input.BrushRadius, sand.SandColor)
		},
	},
	"rain": {
		name: "rain",
		feed: func(w *sand.World, rng *core.RNG, _ int) {
			size := w.Size()
			drops := size.W / 20
			if drops < 1 {
				drops = 1
			}
			for i := 0; i < drops; i++ {
				w.Paint(rng.IntN(size.W), 0, sand.SandColor)
			}
		},
	},
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseScenarios resolves a comma separated list ("all" selects every
// scenario).
func parseScenarios(list string) ([]scenario, error) {
	list = strings.TrimSpace(list)
	if list == "" || list == "all" {
		var out []scenario
		for _, name := range scenarioNames() {
			out = append(out, scenarios[name])
		}
		return out, nil
	}
	var out []scenario
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		sc, ok := scenarios[name]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (have %s)", name, strings.Join(scenarioNames(), ", "))
		}
		out = append(out, sc)
	}
	return out, nil
}

type job struct {
	scenario scenario
	preset   sand.Preset
}

type result struct {
	scenario   string
	preset     string
	durations  []time.Duration
	grains     int
	violations int
}

func (r result) mean() time.Duration {
	if len(r.durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.durations {
		total += d
	}
	return total / time.Duration(len(r.durations))
}

func (r result) max() time.Duration {
	var m time.Duration
	for _, d := range r.durations {
		if d > m {
			m = d
		}
	}
	return m
}

// runScenario steps a fresh world and checks that no step creates or
// destroys grains. frame, when non-nil, observes the world after every tick.
func runScenario(j job, steps int, seed int64, frame func(*sand.World) error) (result, error) {
	world := sand.New(j.preset.Width, j.preset.Height)
	rng := core.NewRNG(seed)
	if j.scenario.setup != nil {
		j.scenario.setup(world, rng)
	}

	res := result{
		scenario:  j.scenario.name,
		preset:    j.preset.Label,
		durations: make([]time.Duration, 0, steps),
	}
	for tick := 0; tick < steps; tick++ {
		if j.scenario.feed != nil {
			j.scenario.feed(world, rng, tick)
		}
		before := world.Count()
		start := time.Now()
		world.Step()
		res.durations = append(res.durations, time.Since(start))
		if world.Count() != before {
			res.violations++
		}
		if frame != nil {
			if err := frame(world); err != nil {
				return res, fmt.Errorf("tick %d: %w", tick, err)
			}
		}
	}
	res.grains = world.Count()
	return res, nil
}
