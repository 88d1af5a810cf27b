package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"gpuadvisor/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNoSessionData is returned when exporting a session with no samples
var ErrNoSessionData = errors.New("no session data to export")

// DefaultProfileDir returns ~/.gpu-advisor/profiles
func DefaultProfileDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".gpu-advisor", "profiles")
	}
	return filepath.Join(home, ".gpu-advisor", "profiles")
}

// SafeProfileName replaces every non-alphanumeric rune with an underscore
func SafeProfileName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}

// NewProfile builds a profile with a fresh ID
func NewProfile(name, gpuName, game string, settings map[string]any) *models.Profile {
	if settings == nil {
		settings = map[string]any{}
	}
	return &models.Profile{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		GPU:       gpuName,
		Game:      game,
		Settings:  settings,
	}
}

// ProfileFromSettings converts an optimal-settings result into profile
// settings.
func ProfileFromSettings(name, gpuName, game string, result *models.SettingsResult) *models.Profile {
	settings := map[string]any{
		"resolution":     result.Resolution,
		"quality_preset": result.Quality,
	}
	if result.Prediction != nil {
		settings["expected_fps"] = result.Prediction.FPSAverage
		settings["confidence"] = string(result.Prediction.Confidence)
	}
	if result.Warning != "" {
		settings["warning"] = result.Warning
	}
	return NewProfile(name, gpuName, game, settings)
}

// ExportProfile writes profile to path, or to the default profile directory
// when path is empty. The format follows the extension: .yaml and .yml
// produce YAML, anything else JSON. It returns the written path.
func ExportProfile(profile *models.Profile, path string) (string, error) {
	if path == "" {
		path = filepath.Join(DefaultProfileDir(), SafeProfileName(profile.Name)+".json")
	}
	if err := writeDocument(path, profile); err != nil {
		return "", fmt.Errorf("failed to export profile %q: %w", profile.Name, err)
	}
	return path, nil
}

// ImportProfile reads a profile written by ExportProfile
func ImportProfile(path string) (*models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{}
	if isYAMLPath(path) {
		err = yaml.Unmarshal(data, profile)
	} else {
		err = json.Unmarshal(data, profile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return profile, nil
}

// ExportPrediction writes a prediction as JSON or YAML by extension
func ExportPrediction(pred *models.Prediction, path string) error {
	return writeDocument(path, pred)
}

// ExportGPUProfile writes the GPU descriptor with optional compatibility
func ExportGPUProfile(gpu *models.GPUInfo, compat *models.Compatibility, path string) error {
	return writeDocument(path, &models.GPUProfile{
		ExportedAt:    time.Now().UTC(),
		GPU:           gpu,
		Compatibility: compat,
	})
}

// ExportSession writes a monitoring session as JSON or YAML by extension
func ExportSession(collector *HistoryCollector, path string) error {
	session := collector.Session()
	if session.Summary.Samples == 0 {
		return ErrNoSessionData
	}
	return writeDocument(path, session)
}

func writeDocument(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if isYAMLPath(path) {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
