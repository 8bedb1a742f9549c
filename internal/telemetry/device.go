//go:build opencl

package telemetry

import (
	"log"

	"github.com/jgillich/go-opencl/cl"
)

// DeviceName returns the name of the first OpenCL GPU, falling back to the
// first CPU device. It returns "" when no platform is available.
func DeviceName() string {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		log.Printf("querying OpenCL platforms: %v", err)
		return ""
	}
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(kind)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0].Name()
			}
		}
	}
	return ""
}
