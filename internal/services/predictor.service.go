package services

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"gpuadvisor/internal/models"
)

// Variance bands applied to the raw estimate
const (
	minBand    = 0.75
	maxBand    = 1.15
	onePctBand = 0.60
)

// Predictor estimates frame rates from the reference tables. All methods
// are pure functions of their arguments and the immutable tables, so a
// Predictor may be shared between goroutines.
type Predictor struct {
	resolver *Resolver
	catalog  GameCatalog
	logger   *slog.Logger
}

// NewPredictor returns a predictor. catalog may be nil, in which case
// predictions carry no VRAM or upscaling notes.
func NewPredictor(resolver *Resolver, catalog GameCatalog, logger *slog.Logger) *Predictor {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Predictor{resolver: resolver, catalog: catalog, logger: logger}
}

// NewPredictorFromCatalog wires a resolver whose game baselines are layered
// over the catalog's custom entries.
func NewPredictorFromCatalog(catalog *Catalog, logger *slog.Logger) *Predictor {
	return NewPredictor(NewResolver(catalog.BaselineOverrides()), catalog, logger)
}

// Resolver exposes the name resolver backing this predictor
func (p *Predictor) Resolver() *Resolver {
	return p.resolver
}

// rawFPS applies the multiplicative model. Unknown resolution or quality keys
// are logged and treated as neutral.
func (p *Predictor) rawFPS(gpuName, game, resolution, quality string) (raw float64, gpuMatched, gameMatched bool) {
	index, gpuMatched := p.resolver.ResolveGPUIndex(gpuName)
	base, gameMatched := p.resolver.ResolveGameBaseline(game)

	resFactor, ok := p.resolver.ResolutionFactor(resolution)
	if !ok {
		p.logger.Warn("Unknown resolution, using neutral multiplier", "resolution", resolution)
	}
	qualFactor, ok := p.resolver.QualityFactor(quality)
	if !ok {
		p.logger.Warn("Unknown quality preset, using neutral multiplier", "quality", quality)
	}

	return float64(base) * index * resFactor * qualFactor, gpuMatched, gameMatched
}

// Predict forecasts FPS for a GPU, game, resolution and quality preset
func (p *Predictor) Predict(gpu *models.GPUInfo, game, resolution, quality string) *models.Prediction {
	raw, gpuMatched, gameMatched := p.rawFPS(gpu.Name, game, resolution, quality)

	avg := int(math.Floor(raw))
	pred := &models.Prediction{
		Game:           game,
		GPUName:        gpu.Name,
		Resolution:     resolution,
		Quality:        quality,
		FPSMin:         int(math.Floor(raw * minBand)),
		FPSMax:         int(math.Floor(raw * maxBand)),
		FPSAverage:     avg,
		FPS1PercentLow: int(math.Floor(raw * onePctBand)),
		Confidence:     classifyConfidence(gpuMatched, gameMatched),
		Notes:          []string{},
	}

	if p.catalog != nil {
		if req, ok := p.catalog.Lookup(game); ok {
			if gpu.VRAMTotalMB < req.RecommendedVRAMMB {
				pred.Notes = append(pred.Notes, fmt.Sprintf(
					"VRAM (%dMB) is below recommended (%dMB). May experience stuttering.",
					gpu.VRAMTotalMB, req.RecommendedVRAMMB))
			}
			if req.SupportsDLSS && SupportsDLSS(gpu) {
				pred.Notes = append(pred.Notes, "DLSS available - can boost FPS by 30-60%")
			} else if req.SupportsFSR {
				pred.Notes = append(pred.Notes, "FSR available - can boost FPS by 20-40%")
			}
		}
	}

	if slices.Contains(fourKResolutions, resolution) {
		pred.Notes = append(pred.Notes, "4K gaming is very demanding. Consider DLSS/FSR for better performance.")
	}

	if normalizeQuality(quality) == "ultra" && avg < 60 {
		pred.Notes = append(pred.Notes, "Consider reducing to High for smoother gameplay.")
	}

	return pred
}

func classifyConfidence(gpuMatched, gameMatched bool) models.Confidence {
	switch {
	case gpuMatched && gameMatched:
		return models.ConfidenceHigh
	case gpuMatched || gameMatched:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// PredictAcrossQualities predicts every preset from low to ultra at one
// resolution. Entries keep preset order.
func (p *Predictor) PredictAcrossQualities(gpu *models.GPUInfo, game, resolution string) []models.SweepEntry {
	out := make([]models.SweepEntry, 0, len(sweepQualities))
	for _, q := range sweepQualities {
		out = append(out, models.SweepEntry{Key: q, Prediction: p.Predict(gpu, game, resolution, q)})
	}
	return out
}

// PredictAcrossResolutions predicts 1080p, 1440p and 4K at one quality preset
func (p *Predictor) PredictAcrossResolutions(gpu *models.GPUInfo, game, quality string) []models.SweepEntry {
	out := make([]models.SweepEntry, 0, len(sweepResolutions))
	for _, res := range sweepResolutions {
		out = append(out, models.SweepEntry{Key: res, Prediction: p.Predict(gpu, game, res, quality)})
	}
	return out
}
