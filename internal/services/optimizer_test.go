package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOptimalSettings(t *testing.T) {
	p := testPredictor()

	tests := []struct {
		name          string
		gpu           string
		game          string
		target        int
		preferQuality bool
		wantRes       string
		wantQuality   string
		wantWarning   string
	}{
		{
			name: "quality first stops at first hit", gpu: "NVIDIA GeForce RTX 4090", game: "Cyberpunk 2077",
			target: 60, preferQuality: true, wantRes: "3840x2160", wantQuality: "medium",
		},
		{
			name: "performance keeps last hit of reverse scan", gpu: "NVIDIA GeForce RTX 4090", game: "Cyberpunk 2077",
			target: 60, preferQuality: false, wantRes: "3840x2160", wantQuality: "medium",
		},
		{
			name: "zero target takes the best configuration", gpu: "NVIDIA GeForce GTX 1050", game: "Alan Wake 2",
			target: 0, preferQuality: true, wantRes: "3840x2160", wantQuality: "ultra",
		},
		{
			name: "mid card drops resolution", gpu: "NVIDIA GeForce RTX 3060", game: "Cyberpunk 2077",
			target: 60, preferQuality: true, wantRes: "2560x1440", wantQuality: "low",
		},
		{
			name: "unattainable target", gpu: "NVIDIA GeForce GTX 1060", game: "Cyberpunk 2077",
			target: 240, preferQuality: true, wantRes: "1280x720", wantQuality: "low",
			wantWarning: "Cannot achieve 240 FPS even at lowest settings",
		},
		{
			name: "unattainable in performance mode", gpu: "NVIDIA GeForce GTX 1060", game: "Cyberpunk 2077",
			target: 240, preferQuality: false, wantRes: "1280x720", wantQuality: "low",
			wantWarning: "Cannot achieve 240 FPS even at lowest settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.FindOptimalSettings(testGPU(tt.gpu, 8192), tt.game, tt.target, tt.preferQuality)
			require.NotNil(t, result.Prediction)
			assert.Equal(t, tt.wantRes, result.Resolution)
			assert.Equal(t, tt.wantQuality, result.Quality)
			assert.Equal(t, tt.wantWarning, result.Warning)
			assert.Equal(t, tt.wantRes, result.Prediction.Resolution)
			assert.Equal(t, tt.wantQuality, result.Prediction.Quality)
			if tt.wantWarning == "" {
				assert.GreaterOrEqual(t, result.Prediction.FPSAverage, tt.target)
			} else {
				assert.Less(t, result.Prediction.FPSAverage, tt.target)
			}
		})
	}
}

func TestPreferQuality(t *testing.T) {
	assert.True(t, PreferQuality("quality"))
	assert.True(t, PreferQuality("balanced"))
	assert.False(t, PreferQuality("performance"))
}

func TestOptimalAcrossGames(t *testing.T) {
	p := testPredictor()
	gpu := testGPU("NVIDIA GeForce RTX 3070", 8192)

	entries := p.OptimalAcrossGames(gpu, nil, 60, true)
	require.Len(t, entries, len(DefaultComparisonGames))
	for i, e := range entries {
		assert.Equal(t, DefaultComparisonGames[i], e.Game)
		assert.Equal(t, p.FindOptimalSettings(gpu, e.Game, 60, true), e.Result)
	}

	entries = p.OptimalAcrossGames(gpu, []string{"Valorant"}, 144, false)
	require.Len(t, entries, 1)
	assert.Equal(t, "Valorant", entries[0].Game)
	assert.Empty(t, entries[0].Result.Warning)
}
