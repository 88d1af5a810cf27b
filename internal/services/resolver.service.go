package services

import (
	"strings"

	"gpuadvisor/internal/models"
)

// Resolver matches free-form GPU and game names against the reference
// tables. A Resolver is immutable after construction and safe for
// concurrent use.
type Resolver struct {
	index     []indexEntry
	overrides []baselineEntry
	baselines []baselineEntry
}

// NewResolver builds a resolver over the built-in tables. overrides, when
// non-nil, is a layer of game baselines consulted before the built-in table.
func NewResolver(overrides map[string]int) *Resolver {
	r := &Resolver{
		index:     append([]indexEntry(nil), performanceIndex...),
		baselines: append([]baselineEntry(nil), gameBaselines...),
	}
	for _, name := range sortedKeys(overrides) {
		if fps := overrides[name]; fps > 0 {
			r.overrides = append(r.overrides, baselineEntry{name: name, fps: fps})
		}
	}
	return r
}

// ResolveGPUIndex returns the performance index of the first table pattern
// found in name, case-insensitively. Unknown GPUs get a conservative 0.50.
func (r *Resolver) ResolveGPUIndex(name string) (float64, bool) {
	upper := strings.ToUpper(name)
	for _, e := range r.index {
		if strings.Contains(upper, strings.ToUpper(e.pattern)) {
			return e.index, true
		}
	}
	return defaultGPUIndex, false
}

// ResolveGameBaseline returns the reference FPS for a game. Matching tries an
// exact name, then a case-insensitive name, then a substring in either
// direction. Unknown games default to 60.
func (r *Resolver) ResolveGameBaseline(name string) (int, bool) {
	if strings.TrimSpace(name) == "" {
		return defaultGameFPS, false
	}
	layers := [][]baselineEntry{r.overrides, r.baselines}

	for _, layer := range layers {
		for _, e := range layer {
			if e.name == name {
				return e.fps, true
			}
		}
	}

	lower := strings.ToLower(name)
	for _, layer := range layers {
		for _, e := range layer {
			if strings.ToLower(e.name) == lower {
				return e.fps, true
			}
		}
	}

	for _, layer := range layers {
		for _, e := range layer {
			table := strings.ToLower(e.name)
			if strings.Contains(table, lower) || strings.Contains(lower, table) {
				return e.fps, true
			}
		}
	}

	return defaultGameFPS, false
}

// ResolutionFactor returns the multiplier for a resolution key such as
// "2560x1440". Keys match exactly; unknown keys return 1.0 and false.
func (r *Resolver) ResolutionFactor(resolution string) (float64, bool) {
	if f, ok := resolutionFactors[resolution]; ok {
		return f, true
	}
	return neutralMultiplier, false
}

// QualityFactor returns the multiplier for a quality preset, ignoring case
// and surrounding space. Unknown presets return 1.0 and false.
func (r *Resolver) QualityFactor(quality string) (float64, bool) {
	if f, ok := qualityFactors[normalizeQuality(quality)]; ok {
		return f, true
	}
	return neutralMultiplier, false
}

func normalizeQuality(quality string) string {
	return strings.ToLower(strings.TrimSpace(quality))
}

// LookupGPUSpec returns the static specifications for a GPU name using the
// same ordered substring rule as the performance index.
func LookupGPUSpec(name string) (models.GPUSpec, bool) {
	upper := strings.ToUpper(name)
	for _, e := range gpuSpecs {
		if strings.Contains(upper, e.pattern) {
			return e.spec, true
		}
	}
	return models.GPUSpec{}, false
}

// KnownResolutions lists the supported resolution keys from highest to
// lowest throughput cost.
func KnownResolutions() []string {
	return []string{"5120x2160", "3840x2160", "3440x1440", "2560x1440", "2560x1080", "1920x1080", "1600x900", "1280x720"}
}

// KnownQualities lists the supported quality presets from cheapest to most
// expensive.
func KnownQualities() []string {
	return []string{"low", "medium", "high", "ultra", "extreme"}
}
