package core

import "time"

// FixedStep gates work to a steady rate. The caller supplies the clock so the
// same controller serves both the frame loop and tests.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate per
// second. The first call to Due always fires.
func NewFixedStep(rate int) *FixedStep {
	if rate <= 0 {
		rate = 60
	}
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the target rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Interval reports the duration between two firings.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports whether a unit of work should run at the provided instant.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			// Drop any backlog left by a stalled frame.
			f.accumulator = 0
		}
		return true
	}
	return false
}

// ShouldStep is Due evaluated against the wall clock.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(time.Now())
}
