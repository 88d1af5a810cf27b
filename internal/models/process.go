package models

// ProcessStatus is a running process matched to a catalog game
type ProcessStatus struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	Game       string  `json:"game"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float32 `json:"mem_percent"`
	Status     string  `json:"status"`
}
