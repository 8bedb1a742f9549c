package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"falling-sand/internal/sims/sand"

	"github.com/guptarohit/asciigraph"
)

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	list := flag.String("scenario", "all", "comma separated scenarios to run")
	seed := flag.Int64("seed", 42, "seed for randomized scenarios")
	record := flag.String("record", "", "write an MJPEG video of the first scenario on the largest preset to this file")
	scale := flag.Int("scale", 3, "pixel scale of recorded frames")
	fps := flag.Int("fps", 60, "frame rate of the recorded video")
	flag.Parse()

	selected, err := parseScenarios(*list)
	if err != nil {
		log.Fatal(err)
	}
	presets := sand.Presets()

	if *record != "" {
		target := job{scenario: selected[0], preset: presets[len(presets)-1]}
		if err := recordScenario(*record, target, *steps, *seed, *scale, *fps); err != nil {
			log.Fatalf("record: %v", err)
		}
		log.Printf("wrote %d frames of %s/%s to %s", *steps, target.scenario.name, target.preset.Label, *record)
	}

	var all []job
	for _, sc := range selected {
		for _, p := range presets {
			all = append(all, job{scenario: sc, preset: p})
		}
	}

	fmt.Printf("Running %d scenarios (%d workers, %d steps)\n", len(all), *workers, *steps)

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := runScenario(j, *steps, *seed, nil)
				if err != nil {
					log.Printf("%s/%s: %v", j.scenario.name, j.preset.Label, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range all {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var done []result
	for res := range results {
		done = append(done, res)
	}
	elapsed := time.Since(start)

	sort.Slice(done, func(i, j int) bool {
		if done[i].scenario != done[j].scenario {
			return done[i].scenario < done[j].scenario
		}
		return done[i].preset < done[j].preset
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	violations := 0
	for _, res := range done {
		violations += res.violations
		fmt.Printf("%-8s %-10s grains=%-6d mean=%-10s max=%-10s violations=%d\n",
			res.scenario, res.preset, res.grains, res.mean().Round(time.Microsecond), res.max().Round(time.Microsecond), res.violations)
	}

	if slowest := slowestResult(done); slowest != nil && len(slowest.durations) > 0 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(microseconds(slowest.durations),
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("step time (µs) %s/%s", slowest.scenario, slowest.preset))))
	}

	if violations > 0 {
		log.Fatalf("conservation violated in %d steps", violations)
	}
}

func recordScenario(path string, j job, steps int, seed int64, scale, fps int) error {
	rec, err := newRecorder(path, j.preset, scale, fps)
	if err != nil {
		return err
	}
	if _, err := runScenario(j, steps, seed, rec.frame); err != nil {
		rec.Close()
		return err
	}
	return rec.Close()
}

func slowestResult(results []result) *result {
	var slowest *result
	for i := range results {
		if slowest == nil || results[i].mean() > slowest.mean() {
			slowest = &results[i]
		}
	}
	return slowest
}

func microseconds(durations []time.Duration) []float64 {
	out := make([]float64, len(durations))
	for i, d := range durations {
		out[i] = float64(d) / float64(time.Microsecond)
	}
	return out
}
