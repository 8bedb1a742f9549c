package telemetry

import (
	"time"

	"falling-sand/internal/core"
)

// Sampler polls a Source while gathering is switched on, at most rate times
// per second, and records the samples in a History.
type Sampler struct {
	src       Source
	gate      *core.FixedStep
	history   *History
	gathering bool
	taken     uint64
}

// NewSampler builds a sampler keeping capacity samples and polling at rate Hz.
func NewSampler(src Source, rate, capacity int) *Sampler {
	if src == nil {
		src = Unavailable
	}
	return &Sampler{
		src:     src,
		gate:    core.NewFixedStep(rate),
		history: NewHistory(capacity),
	}
}

// Gathering reports whether polling is switched on.
func (s *Sampler) Gathering() bool { return s.gathering }

// Toggle flips the gathering switch. Starting a new gathering run clears the
// previous samples.
func (s *Sampler) Toggle() {
	s.gathering = !s.gathering
	if s.gathering {
		s.history.Reset()
	}
}

// Tick polls the source if gathering is on and the poll interval has elapsed.
// It reports whether a sample was taken.
func (s *Sampler) Tick(now time.Time) bool {
	if !s.gathering {
		return false
	}
	if !s.gate.Due(now) {
		return false
	}
	s.history.Push(clampPercent(s.src.Utilization()))
	s.taken++
	return true
}

// Taken counts samples recorded over the sampler's lifetime; renderers use it
// to notice new data.
func (s *Sampler) Taken() uint64 { return s.taken }

// History exposes the recorded samples.
func (s *Sampler) History() *History { return s.history }
