package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gpuadvisor/internal/models"
)

// ErrGameNotFound is returned when a title is in neither catalog layer
var ErrGameNotFound = errors.New("game not found in database")

// GameCatalog supplies per-game requirements used to annotate predictions
type GameCatalog interface {
	Lookup(name string) (*models.GameRequirements, bool)
}

// Catalog is the layered game database: a custom layer loaded from a JSON
// file is consulted before the built-in table. Neither layer is mutated
// after construction.
type Catalog struct {
	custom  []models.GameRequirements
	builtin []models.GameRequirements
}

// NewCatalog builds the catalog. customPath may be empty; a file that cannot
// be read or parsed is logged and ignored.
func NewCatalog(customPath string) *Catalog {
	c := &Catalog{builtin: builtinGames}
	if customPath == "" {
		return c
	}
	custom, err := loadCustomGames(customPath)
	if err != nil {
		slog.Warn("Could not load custom game database", "path", customPath, "error", err)
		return c
	}
	c.custom = custom
	slog.Info("Loaded custom game database", "path", customPath, "games", len(custom))
	return c
}

func loadCustomGames(path string) ([]models.GameRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := map[string]models.GameRequirements{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid game database: %w", err)
	}
	games := make([]models.GameRequirements, 0, len(raw))
	for _, name := range sortedKeys(raw) {
		g := raw[name]
		g.Name = name
		games = append(games, g)
	}
	return games, nil
}

func (c *Catalog) layers() [][]models.GameRequirements {
	return [][]models.GameRequirements{c.custom, c.builtin}
}

// Lookup finds a game by exact name, then case-insensitive name, then by the
// query being part of a catalog name. The returned value is a copy.
func (c *Catalog) Lookup(name string) (*models.GameRequirements, bool) {
	if strings.TrimSpace(name) == "" {
		return nil, false
	}
	for _, layer := range c.layers() {
		for i := range layer {
			if layer[i].Name == name {
				g := layer[i]
				return &g, true
			}
		}
	}
	lower := strings.ToLower(name)
	for _, layer := range c.layers() {
		for i := range layer {
			if strings.ToLower(layer[i].Name) == lower {
				g := layer[i]
				return &g, true
			}
		}
	}
	for _, layer := range c.layers() {
		for i := range layer {
			if strings.Contains(strings.ToLower(layer[i].Name), lower) {
				g := layer[i]
				return &g, true
			}
		}
	}
	return nil, false
}

// Get is Lookup with ErrGameNotFound for a miss
func (c *Catalog) Get(name string) (*models.GameRequirements, error) {
	g, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, name)
	}
	return g, nil
}

// merged returns the effective view with custom entries shadowing built-ins
func (c *Catalog) merged() map[string]models.GameRequirements {
	out := make(map[string]models.GameRequirements, len(c.builtin)+len(c.custom))
	for _, g := range c.builtin {
		out[g.Name] = g
	}
	for _, g := range c.custom {
		out[g.Name] = g
	}
	return out
}

// List returns all game names, sorted
func (c *Catalog) List() []string {
	return sortedKeys(c.merged())
}

// Search returns the sorted names containing query, case-insensitively
func (c *Catalog) Search(query string) []string {
	q := strings.ToLower(query)
	var matches []string
	for _, name := range c.List() {
		if strings.Contains(strings.ToLower(name), q) {
			matches = append(matches, name)
		}
	}
	return matches
}

// ByFeature lists games supporting a feature: raytracing (rt, ray_tracing),
// dlss or fsr. Unknown features yield nil.
func (c *Catalog) ByFeature(feature string) []string {
	var has func(models.GameRequirements) bool
	switch strings.ToLower(feature) {
	case "raytracing", "ray_tracing", "rt":
		has = func(g models.GameRequirements) bool { return g.SupportsRayTrace }
	case "dlss":
		has = func(g models.GameRequirements) bool { return g.SupportsDLSS }
	case "fsr":
		has = func(g models.GameRequirements) bool { return g.SupportsFSR }
	default:
		return nil
	}
	merged := c.merged()
	var out []string
	for _, name := range sortedKeys(merged) {
		if has(merged[name]) {
			out = append(out, name)
		}
	}
	return out
}

// Suggest lists up to limit game names sharing a word of three or more
// letters with name.
func (c *Catalog) Suggest(name string, limit int) []string {
	var out []string
	seen := map[string]bool{}
	for _, word := range strings.Fields(name) {
		if len(word) < 3 {
			continue
		}
		for _, match := range c.Search(word) {
			if seen[match] {
				continue
			}
			seen[match] = true
			out = append(out, match)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

// Settings returns the graphics settings exposed by a game
func (c *Catalog) Settings(name string) []string {
	if g, ok := c.Lookup(name); ok {
		return g.Settings
	}
	return nil
}

// CheckCompatibility grades a GPU's VRAM against a game's requirements and
// lists the upscaling and ray tracing features available to it.
func (c *Catalog) CheckCompatibility(gpu *models.GPUInfo, name string) *models.Compatibility {
	req, ok := c.Lookup(name)
	if !ok {
		return &models.Compatibility{
			Game:        name,
			Level:       "unknown",
			Message:     fmt.Sprintf("Game '%s' not found in database", name),
			Suggestions: c.Suggest(name, 5),
		}
	}

	result := &models.Compatibility{
		Game:              name,
		VRAMMB:            gpu.VRAMTotalMB,
		MinimumVRAMMB:     req.MinimumVRAMMB,
		RecommendedVRAMMB: req.RecommendedVRAMMB,
		MinimumGPU:        req.MinimumGPU,
		RecommendedGPU:    req.RecommendedGPU,
		Engine:            req.Engine,
		Optimization:      req.Optimization,
	}

	switch {
	case gpu.VRAMTotalMB >= req.RecommendedVRAMMB:
		result.Level = "excellent"
		result.Message = "Your GPU exceeds the recommended requirements"
	case gpu.VRAMTotalMB >= req.MinimumVRAMMB:
		result.Level = "good"
		result.Message = "Your GPU meets minimum requirements but is below recommended"
	default:
		result.Level = "poor"
		result.Message = "Your GPU does not meet minimum VRAM requirements"
	}

	rtx := SupportsDLSS(gpu)
	if req.SupportsRayTrace {
		if rtx {
			result.Features = append(result.Features, "Ray Tracing supported")
		} else {
			result.Features = append(result.Features, "Ray Tracing not supported on your GPU")
		}
	}
	if req.SupportsDLSS {
		if rtx {
			result.Features = append(result.Features, "DLSS supported")
		} else {
			result.Features = append(result.Features, "DLSS not supported on your GPU")
		}
	}
	if req.SupportsFSR {
		result.Features = append(result.Features, "FSR supported (all GPUs)")
	}
	return result
}

// BaselineOverrides returns the custom layer's reference FPS values
func (c *Catalog) BaselineOverrides() map[string]int {
	out := map[string]int{}
	for _, g := range c.custom {
		if g.BaseFPS > 0 {
			out[g.Name] = g.BaseFPS
		}
	}
	return out
}

// MatchExecutable maps a process name to the game that ships it
func (c *Catalog) MatchExecutable(process string) (string, bool) {
	for _, layer := range c.layers() {
		for _, g := range layer {
			for _, exe := range g.Executables {
				if strings.EqualFold(exe, process) {
					return g.Name, true
				}
			}
		}
	}
	return "", false
}

// Export writes the effective database to path as indented JSON
func (c *Catalog) Export(path string) error {
	data, err := json.MarshalIndent(c.merged(), "", "  ")
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

// SupportsDLSS reports whether a GPU belongs to an RTX family
func SupportsDLSS(gpu *models.GPUInfo) bool {
	if strings.Contains(strings.ToUpper(gpu.Name), "RTX") {
		return true
	}
	switch strings.ToLower(gpu.Architecture) {
	case "ampere", "ada lovelace", "blackwell":
		return true
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
