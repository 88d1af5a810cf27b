package models

// Advice is an AI-generated settings recommendation, grounded on the
// estimator's own optimal settings for the same target.
type Advice struct {
	Game       string            `json:"game_name"`
	GPUName    string            `json:"gpu_name"`
	Resolution string            `json:"resolution"`
	TargetFPS  int               `json:"target_fps"`
	Priority   string            `json:"priority"`
	Estimate   *SettingsResult   `json:"estimate"`
	Preset     string            `json:"preset,omitempty"`
	Settings   map[string]string `json:"settings,omitempty"`
	Tips       []string          `json:"tips,omitempty"`
	Confidence Confidence        `json:"confidence"`
	Summary    string            `json:"summary"`
	Text       string            `json:"text"`
}

// ChatMessage is one turn of an advisor conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
