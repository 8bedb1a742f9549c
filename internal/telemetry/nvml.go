//go:build nvml

package telemetry

import (
	"log"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

type nvmlSource struct{}

// NewSource returns an NVML-backed GPU utilization source for device 0.
func NewSource() Source { return nvmlSource{} }

// Utilization initializes NVML, reads device 0 and shuts NVML down again.
// Any failure is logged and reported as 0.
func (nvmlSource) Utilization() float64 {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		log.Printf("nvml init: %s", nvml.ErrorString(ret))
		return 0
	}
	defer func() {
		if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
			log.Printf("nvml shutdown: %s", nvml.ErrorString(ret))
		}
	}()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		log.Printf("nvml device count: %s", nvml.ErrorString(ret))
		return 0
	}
	if count == 0 {
		return 0
	}
	device, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		log.Printf("nvml device handle: %s", nvml.ErrorString(ret))
		return 0
	}
	util, ret := nvml.DeviceGetUtilizationRates(device)
	if ret != nvml.SUCCESS {
		log.Printf("nvml utilization rates: %s", nvml.ErrorString(ret))
		return 0
	}
	return clampPercent(float64(util.Gpu))
}
