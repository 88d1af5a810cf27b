package models

import "time"

// GPUHistory is one sample of GPU load
type GPUHistory struct {
	Timestamp    time.Time `json:"timestamp"`
	Temperature  float64   `json:"temperature_c"`
	GPUUsage     float64   `json:"gpu_usage_percent"`
	MemoryUsage  float64   `json:"memory_usage_percent"`
	MemoryUsedMB int       `json:"memory_used_mb"`
	MemoryTotMB  int       `json:"memory_total_mb"`
	PowerDraw    float64   `json:"power_draw_w"`
	PowerLimit   float64   `json:"power_limit_w"`
}

// SessionSummary aggregates the samples of a monitoring session
type SessionSummary struct {
	GPUName         string  `json:"gpu_name"`
	DurationSeconds float64 `json:"duration_seconds"`
	Samples         int     `json:"samples"`
	AvgTemperature  float64 `json:"avg_temperature"`
	MaxTemperature  float64 `json:"max_temperature"`
	AvgGPUUsage     float64 `json:"avg_gpu_usage"`
	MaxPowerDraw    float64 `json:"max_power_draw"`
}

// HistoricalDataWindow holds GPU time-series data for the dashboard
type HistoricalDataWindow struct {
	GPU     []GPUHistory   `json:"gpu"`
	Summary SessionSummary `json:"summary"`
}

// SessionExport is the on-disk form of a monitoring session
type SessionExport struct {
	Summary SessionSummary `json:"summary" yaml:"summary"`
	Metrics []GPUHistory   `json:"metrics" yaml:"metrics"`
}
