package models

// CPUStatus represents CPU usage information
type CPUStatus struct {
	ModelName    string    `json:"model_name"`
	UsagePercent float64   `json:"usage_percent"`
	PerCore      []float64 `json:"per_core,omitempty"`
	CoreCount    int       `json:"core_count"`
	ThreadCount  int       `json:"thread_count"`
}
