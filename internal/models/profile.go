package models

import "time"

// Profile is an exported settings profile
type Profile struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
	GPU       string         `json:"gpu" yaml:"gpu"`
	Game      string         `json:"game" yaml:"game"`
	Settings  map[string]any `json:"settings" yaml:"settings"`
}

// GPUProfile is the export of a detected GPU with optional game compatibility
type GPUProfile struct {
	ExportedAt    time.Time      `json:"exported_at" yaml:"exported_at"`
	GPU           *GPUInfo       `json:"gpu" yaml:"gpu"`
	Compatibility *Compatibility `json:"game_compatibility,omitempty" yaml:"game_compatibility,omitempty"`
}
