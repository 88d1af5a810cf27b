package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"gpuadvisor/internal/services"

	"github.com/gin-gonic/gin"
)

// GetPrediction returns the FPS forecast for one configuration
// Query params: game (required), resolution, quality, gpu, vram_mb, architecture
func (h *Handlers) GetPrediction(c *gin.Context) {
	game, ok := requireGame(c)
	if !ok {
		return
	}
	gpu := h.resolveGPU(c)
	if gpu == nil {
		return
	}

	pred := h.Predictor.Predict(gpu, game, h.resolution(c), h.quality(c))
	h.Metrics.ObservePrediction(pred)
	c.JSON(http.StatusOK, pred)
}

// GetQualitySweep predicts every quality preset at one resolution
func (h *Handlers) GetQualitySweep(c *gin.Context) {
	game, ok := requireGame(c)
	if !ok {
		return
	}
	gpu := h.resolveGPU(c)
	if gpu == nil {
		return
	}

	resolution := h.resolution(c)
	entries := h.Predictor.PredictAcrossQualities(gpu, game, resolution)
	for _, e := range entries {
		h.Metrics.ObservePrediction(e.Prediction)
	}
	c.JSON(http.StatusOK, gin.H{
		"game":        game,
		"gpu":         gpu.Name,
		"resolution":  resolution,
		"predictions": entries,
	})
}

// GetResolutionSweep predicts every common resolution at one quality preset
func (h *Handlers) GetResolutionSweep(c *gin.Context) {
	game, ok := requireGame(c)
	if !ok {
		return
	}
	gpu := h.resolveGPU(c)
	if gpu == nil {
		return
	}

	quality := h.quality(c)
	entries := h.Predictor.PredictAcrossResolutions(gpu, game, quality)
	for _, e := range entries {
		h.Metrics.ObservePrediction(e.Prediction)
	}
	c.JSON(http.StatusOK, gin.H{
		"game":        game,
		"gpu":         gpu.Name,
		"quality":     quality,
		"predictions": entries,
	})
}

// GetOptimalSettings searches for the best configuration reaching a target
// Query params: game (required), target_fps, prefer=quality|balanced|performance
func (h *Handlers) GetOptimalSettings(c *gin.Context) {
	game, ok := requireGame(c)
	if !ok {
		return
	}

	target := h.Preferences.TargetFPS
	if v := c.Query("target_fps"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target_fps must be a positive integer"})
			return
		}
		target = parsed
	}

	prefer := strings.ToLower(c.DefaultQuery("prefer", h.Preferences.Priority))
	switch prefer {
	case "quality", "balanced", "performance":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "prefer must be quality, balanced or performance"})
		return
	}

	gpu := h.resolveGPU(c)
	if gpu == nil {
		return
	}

	result := h.Predictor.FindOptimalSettings(gpu, game, target, services.PreferQuality(prefer))
	h.Metrics.ObserveSettings(result)
	c.JSON(http.StatusOK, gin.H{
		"game":       game,
		"gpu":        gpu.Name,
		"target_fps": target,
		"priority":   prefer,
		"result":     result,
	})
}

// GetComparison compares the request GPU with another GPU by name. Without
// a game it compares across the default set of titles.
func (h *Handlers) GetComparison(c *gin.Context) {
	other := strings.TrimSpace(c.Query("other"))
	if other == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "other is required"})
		return
	}
	gpu := h.resolveGPU(c)
	if gpu == nil {
		return
	}

	if game := strings.TrimSpace(c.Query("game")); game != "" {
		c.JSON(http.StatusOK, h.Predictor.CompareGPUs(gpu, other, game, h.resolution(c), h.quality(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gpu":         gpu.Name,
		"other":       other,
		"comparisons": h.Predictor.CompareAcrossGames(gpu, other, nil),
	})
}
