//go:build !nvml

package telemetry

// NewSource returns the Unavailable source; rebuild with -tags nvml to query
// NVIDIA GPUs.
func NewSource() Source { return Unavailable }
