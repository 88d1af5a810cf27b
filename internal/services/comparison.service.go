package services

import (
	"math"

	"gpuadvisor/internal/models"
)

// CompareGPUs compares the full prediction for gpu against the raw model
// estimate for another GPU known only by name. A positive difference means
// the other GPU is faster.
func (p *Predictor) CompareGPUs(gpu *models.GPUInfo, otherName, game, resolution, quality string) *models.ComparisonResult {
	pred := p.Predict(gpu, game, resolution, quality)

	raw, _, _ := p.rawFPS(otherName, game, resolution, quality)
	otherFPS := int(math.Floor(raw))

	diff := otherFPS - pred.FPSAverage
	pct := 0.0
	if pred.FPSAverage > 0 {
		pct = math.Round(float64(diff)/float64(pred.FPSAverage)*100*10) / 10
	}

	faster := gpu.Name
	if diff > 0 {
		faster = otherName
	}

	return &models.ComparisonResult{
		GPU1Name:             gpu.Name,
		GPU1FPS:              pred.FPSAverage,
		GPU2Name:             otherName,
		GPU2FPS:              otherFPS,
		FPSDifference:        diff,
		PercentageDifference: pct,
		FasterGPU:            faster,
		Game:                 game,
		Resolution:           resolution,
		Quality:              quality,
	}
}

// CompareAcrossGames runs CompareGPUs at 1080p High for each game, in order.
// An empty list uses DefaultComparisonGames.
func (p *Predictor) CompareAcrossGames(gpu *models.GPUInfo, otherName string, games []string) []*models.ComparisonResult {
	if len(games) == 0 {
		games = DefaultComparisonGames
	}
	out := make([]*models.ComparisonResult, 0, len(games))
	for _, g := range games {
		out = append(out, p.CompareGPUs(gpu, otherName, g, "1920x1080", "high"))
	}
	return out
}
