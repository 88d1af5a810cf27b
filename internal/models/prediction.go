package models

// Confidence is the trust label attached to a prediction
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Prediction is a frame-rate forecast for one configuration
type Prediction struct {
	Game           string     `json:"game_name" yaml:"game_name"`
	GPUName        string     `json:"gpu_name" yaml:"gpu_name"`
	Resolution     string     `json:"resolution" yaml:"resolution"`
	Quality        string     `json:"quality_preset" yaml:"quality_preset"`
	FPSMin         int        `json:"fps_min" yaml:"fps_min"`
	FPSMax         int        `json:"fps_max" yaml:"fps_max"`
	FPSAverage     int        `json:"fps_average" yaml:"fps_average"`
	FPS1PercentLow int        `json:"fps_1_percent_low" yaml:"fps_1_percent_low"`
	Confidence     Confidence `json:"confidence" yaml:"confidence"`
	Notes          []string   `json:"notes" yaml:"notes"`
}

// SweepEntry pairs a sweep key (quality preset or resolution) with its prediction
type SweepEntry struct {
	Key        string      `json:"key"`
	Prediction *Prediction `json:"prediction"`
}

// SettingsResult is the outcome of the optimal settings search
type SettingsResult struct {
	Resolution string      `json:"resolution" yaml:"resolution"`
	Quality    string      `json:"quality_preset" yaml:"quality_preset"`
	Prediction *Prediction `json:"prediction" yaml:"prediction"`
	Warning    string      `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// ComparisonResult holds the relative performance of two GPUs for one game
type ComparisonResult struct {
	GPU1Name             string  `json:"gpu1_name"`
	GPU1FPS              int     `json:"gpu1_fps"`
	GPU2Name             string  `json:"gpu2_name"`
	GPU2FPS              int     `json:"gpu2_fps"`
	FPSDifference        int     `json:"fps_difference"`
	PercentageDifference float64 `json:"percentage_difference"`
	FasterGPU            string  `json:"faster_gpu"`
	Game                 string  `json:"game"`
	Resolution           string  `json:"resolution"`
	Quality              string  `json:"quality"`
}

// GameSettings pairs a game with its optimal-settings result
type GameSettings struct {
	Game   string          `json:"game"`
	Result *SettingsResult `json:"result"`
}
