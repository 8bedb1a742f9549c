// Package telemetry gathers device utilization samples for the debug overlay.
// Sources never return errors: an unavailable device reads as zero so the
// simulation keeps running without working telemetry.
package telemetry

// Source reports current device utilization as a percentage in [0,100].
// Queries may block and have a measurable cost; callers decide when to poll.
type Source interface {
	Utilization() float64
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func() float64

// Utilization calls f.
func (f SourceFunc) Utilization() float64 { return f() }

// Unavailable is the sentinel source used when no device can be queried.
var Unavailable Source = SourceFunc(func() float64 { return 0 })

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
