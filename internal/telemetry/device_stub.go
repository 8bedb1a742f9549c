//go:build !opencl

package telemetry

// DeviceName is unknown without OpenCL support; rebuild with -tags opencl.
func DeviceName() string { return "" }
