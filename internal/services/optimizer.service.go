package services

import (
	"fmt"

	"gpuadvisor/internal/models"
)

const (
	lowestResolution = "1280x720"
	lowestQuality    = "low"
)

// FindOptimalSettings searches resolution x quality for a configuration whose
// average FPS reaches targetFPS.
//
// With preferQuality the grid is scanned best-first (4K ultra down to 720p
// low) and the first hit wins. Otherwise it is scanned worst-first over every
// combination and the last hit is kept. When nothing reaches the target the
// lowest configuration is returned with a warning.
func (p *Predictor) FindOptimalSettings(gpu *models.GPUInfo, game string, targetFPS int, preferQuality bool) *models.SettingsResult {
	var best *models.SettingsResult

	if preferQuality {
	search:
		for _, res := range searchResolutions {
			for _, q := range searchQualities {
				pred := p.Predict(gpu, game, res, q)
				if pred.FPSAverage >= targetFPS {
					best = &models.SettingsResult{Resolution: res, Quality: q, Prediction: pred}
					break search
				}
			}
		}
	} else {
		for i := len(searchResolutions) - 1; i >= 0; i-- {
			res := searchResolutions[i]
			for j := len(searchQualities) - 1; j >= 0; j-- {
				q := searchQualities[j]
				pred := p.Predict(gpu, game, res, q)
				if pred.FPSAverage >= targetFPS {
					best = &models.SettingsResult{Resolution: res, Quality: q, Prediction: pred}
				}
			}
		}
	}

	if best == nil {
		best = &models.SettingsResult{
			Resolution: lowestResolution,
			Quality:    lowestQuality,
			Prediction: p.Predict(gpu, game, lowestResolution, lowestQuality),
			Warning:    fmt.Sprintf("Cannot achieve %d FPS even at lowest settings", targetFPS),
		}
		p.logger.Debug("Target FPS unattainable", "game", game, "gpu", gpu.Name, "target_fps", targetFPS)
	}

	return best
}

// PreferQuality maps a CLI/API priority to the search mode. "balanced"
// searches quality-first.
func PreferQuality(priority string) bool {
	return priority != "performance"
}

// OptimalAcrossGames runs FindOptimalSettings for each game, in order. An
// empty list uses DefaultComparisonGames.
func (p *Predictor) OptimalAcrossGames(gpu *models.GPUInfo, games []string, targetFPS int, preferQuality bool) []models.GameSettings {
	if len(games) == 0 {
		games = DefaultComparisonGames
	}
	out := make([]models.GameSettings, 0, len(games))
	for _, g := range games {
		out = append(out, models.GameSettings{Game: g, Result: p.FindOptimalSettings(gpu, g, targetFPS, preferQuality)})
	}
	return out
}
