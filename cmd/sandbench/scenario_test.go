package main

import (
	"errors"
	"slices"
	"testing"
	"time"

	"falling-sand/internal/sims/sand"
)

func TestParseScenarios(t *testing.T) {
	all, err := parseScenarios("all")
	if err != nil {
		t.Fatalf("parse all: %v", err)
	}
	var names []string
	for _, sc := range all {
		names = append(names, sc.name)
	}
	if want := []string{"column", "pile", "pour", "rain"}; !slices.Equal(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}

	some, err := parseScenarios("rain, pour")
	if err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if len(some) != 2 || some[0].name != "rain" || some[1].name != "pour" {
		t.Fatalf("unexpected selection: %+v", some)
	}

	if _, err := parseScenarios("flood"); err == nil {
		t.Fatalf("expected unknown scenario error")
	}
}

func TestScenariosConserveGrains(t *testing.T) {
	preset := sand.Presets()[0]
	for _, name := range scenarioNames() {
		res, err := runScenario(job{scenario: scenarios[name], preset: preset}, 120, 7, nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if res.violations != 0 {
			t.Fatalf("%s: %d conservation violations", name, res.violations)
		}
		if res.grains == 0 {
			t.Fatalf("%s: no grains on the grid", name)
		}
		if len(res.durations) != 120 {
			t.Fatalf("%s: recorded %d durations, want 120", name, len(res.durations))
		}
	}
}

func TestColumnSettlesIntoBottomRows(t *testing.T) {
	preset := sand.Presets()[0]
	var final *sand.World
	_, err := runScenario(job{scenario: scenarios["column"], preset: preset}, 200, 1, func(w *sand.World) error {
		final = w
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	size := final.Size()
	for row := 0; row < size.H/2; row++ {
		for col := 0; col < size.W; col++ {
			if c, _ := final.Cell(col, row); c.Kind == sand.Granular {
				t.Fatalf("grain left in upper half at (%d,%d)", col, row)
			}
		}
	}
	if got := final.Count(); got != size.H/2 {
		t.Fatalf("grains = %d, want %d", got, size.H/2)
	}
}

func TestRunScenarioStopsOnFrameError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := runScenario(job{scenario: scenarios["pour"], preset: sand.Presets()[0]}, 10, 1, func(*sand.World) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if calls != 3 {
		t.Fatalf("frame called %d times, want 3", calls)
	}
}

func TestResultStats(t *testing.T) {
	r := result{durations: []time.Duration{time.Millisecond, 3 * time.Millisecond}}
	if r.mean() != 2*time.Millisecond {
		t.Fatalf("mean = %s", r.mean())
	}
	if r.max() != 3*time.Millisecond {
		t.Fatalf("max = %s", r.max())
	}
	if (result{}).mean() != 0 {
		t.Fatalf("empty mean should be zero")
	}
}
