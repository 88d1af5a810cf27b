package models

// SystemStatus combines host and GPU status
type SystemStatus struct {
	CPU          *CPUStatus      `json:"cpu"`
	Memory       *MemoryStatus   `json:"memory"`
	GPU          *GPUInfo        `json:"gpu,omitempty"`
	RunningGames []ProcessStatus `json:"running_games,omitempty"`
}

// MemoryStatus represents host memory usage
type MemoryStatus struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	AvailableGB  float64 `json:"available_gb"`
	UsagePercent float64 `json:"usage_percent"`
}
