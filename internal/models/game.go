package models

// GameRequirements describes a title in the game catalog
type GameRequirements struct {
	Name              string   `json:"name"`
	MinimumVRAMMB     int      `json:"minimum_vram"`
	RecommendedVRAMMB int      `json:"recommended_vram"`
	MinimumGPU        string   `json:"minimum_gpu"`
	RecommendedGPU    string   `json:"recommended_gpu"`
	SupportsRayTrace  bool     `json:"supports_raytracing"`
	SupportsDLSS      bool     `json:"supports_dlss"`
	SupportsFSR       bool     `json:"supports_fsr"`
	ReleaseYear       int      `json:"release_year"`
	Engine            string   `json:"engine"`
	Optimization      string   `json:"optimization_level"`
	Settings          []string `json:"settings,omitempty"`
	Executables       []string `json:"executables,omitempty"`
	BaseFPS           int      `json:"base_fps,omitempty"`
}

// Compatibility is the result of checking a GPU against a game's requirements
type Compatibility struct {
	Game              string   `json:"game_name" yaml:"game_name"`
	Level             string   `json:"compatible" yaml:"compatible"` // excellent, good, poor, unknown
	Message           string   `json:"message" yaml:"message"`
	VRAMMB            int      `json:"your_vram_mb,omitempty" yaml:"your_vram_mb,omitempty"`
	MinimumVRAMMB     int      `json:"minimum_vram_mb,omitempty" yaml:"minimum_vram_mb,omitempty"`
	RecommendedVRAMMB int      `json:"recommended_vram_mb,omitempty" yaml:"recommended_vram_mb,omitempty"`
	MinimumGPU        string   `json:"minimum_gpu,omitempty" yaml:"minimum_gpu,omitempty"`
	RecommendedGPU    string   `json:"recommended_gpu,omitempty" yaml:"recommended_gpu,omitempty"`
	Engine            string   `json:"engine,omitempty" yaml:"engine,omitempty"`
	Optimization      string   `json:"optimization_level,omitempty" yaml:"optimization_level,omitempty"`
	Features          []string `json:"features,omitempty" yaml:"features,omitempty"`
	Suggestions       []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}
