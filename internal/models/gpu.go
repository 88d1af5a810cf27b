package models

import "time"

// GPUInfo describes one graphics processor. It is the processor descriptor
// consumed by the prediction engine; telemetry fields are zero when the
// descriptor was built by hand.
type GPUInfo struct {
	Index         int     `json:"index" yaml:"index"`
	Name          string  `json:"name" yaml:"name"`
	Vendor        string  `json:"vendor" yaml:"vendor"`
	UUID          string  `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	VRAMTotalMB   int     `json:"vram_total_mb" yaml:"vram_total_mb"`
	VRAMUsedMB    int     `json:"vram_used_mb" yaml:"vram_used_mb"`
	VRAMFreeMB    int     `json:"vram_free_mb" yaml:"vram_free_mb"`
	CUDACores     int     `json:"cuda_cores" yaml:"cuda_cores"`
	BaseClockMHz  int     `json:"base_clock_mhz" yaml:"base_clock_mhz"`
	BoostClockMHz int     `json:"boost_clock_mhz" yaml:"boost_clock_mhz"`
	Temperature   float64 `json:"temperature_c" yaml:"temperature_c"`
	GPUUsage      float64 `json:"gpu_usage_percent" yaml:"gpu_usage_percent"`
	MemoryUsage   float64 `json:"memory_usage_percent" yaml:"memory_usage_percent"`
	PowerDraw     float64 `json:"power_draw_w" yaml:"power_draw_w"`
	PowerLimit    float64 `json:"power_limit_w" yaml:"power_limit_w"`
	DriverVersion string  `json:"driver_version" yaml:"driver_version"`
	Architecture  string  `json:"architecture" yaml:"architecture"`
	Tier          string  `json:"tier" yaml:"tier"`
	PCIeGen       int     `json:"pcie_gen" yaml:"pcie_gen"`
	PCIeWidth     int     `json:"pcie_width" yaml:"pcie_width"`
}

// GPUSpec is a row of the static GPU specifications table
type GPUSpec struct {
	CUDACores     int
	BaseClockMHz  int
	BoostClockMHz int
	Architecture  string
	Tier          string
}

// GPUSnapshot is a timestamped GPU reading served to dashboards
type GPUSnapshot struct {
	GPU       *GPUInfo  `json:"gpu"`
	Timestamp time.Time `json:"timestamp"`
}
