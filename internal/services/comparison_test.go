package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareGPUs(t *testing.T) {
	p := testPredictor()
	gpu := testGPU("NVIDIA GeForce RTX 3070", 8192)

	result := p.CompareGPUs(gpu, "RTX 4090", "Cyberpunk 2077", "1920x1080", "high")

	assert.Equal(t, "NVIDIA GeForce RTX 3070", result.GPU1Name)
	assert.Equal(t, 66, result.GPU1FPS)
	assert.Equal(t, "RTX 4090", result.GPU2Name)
	assert.Equal(t, 154, result.GPU2FPS)
	assert.Equal(t, 88, result.FPSDifference)
	assert.InDelta(t, 133.3, result.PercentageDifference, 1e-9)
	assert.Equal(t, "RTX 4090", result.FasterGPU)
	assert.Equal(t, "Cyberpunk 2077", result.Game)
}

func TestCompareGPUsSlowerAndTie(t *testing.T) {
	p := testPredictor()
	gpu := testGPU("NVIDIA GeForce RTX 3070", 8192)

	slower := p.CompareGPUs(gpu, "GTX 1060", "Fortnite", "1920x1080", "high")
	assert.Negative(t, slower.FPSDifference)
	assert.Negative(t, slower.PercentageDifference)
	assert.Equal(t, gpu.Name, slower.FasterGPU)

	tie := p.CompareGPUs(gpu, "RTX 3070", "Fortnite", "1920x1080", "high")
	assert.Zero(t, tie.FPSDifference)
	assert.Zero(t, tie.PercentageDifference)
	assert.Equal(t, gpu.Name, tie.FasterGPU, "ties favour the first GPU")
}

func TestCompareGPUsZeroBaseline(t *testing.T) {
	p := NewPredictor(NewResolver(map[string]int{"Slideshow": 1}), nil, quietLogger())

	result := p.CompareGPUs(testGPU("GTX 1050", 2048), "RTX 4090", "Slideshow", "3840x2160", "low")
	require.Zero(t, result.GPU1FPS)
	assert.Equal(t, 1, result.GPU2FPS)
	assert.Zero(t, result.PercentageDifference)
	assert.Equal(t, "RTX 4090", result.FasterGPU)
}

func TestCompareAcrossGames(t *testing.T) {
	p := testPredictor()
	results := p.CompareAcrossGames(testGPU("NVIDIA GeForce RTX 3070", 8192), "RTX 4090", nil)

	require.Len(t, results, len(DefaultComparisonGames))
	for i, r := range results {
		assert.Equal(t, DefaultComparisonGames[i], r.Game)
		assert.Equal(t, "1920x1080", r.Resolution)
		assert.Equal(t, "high", r.Quality)
		assert.Equal(t, "RTX 4090", r.FasterGPU)
		assert.Positive(t, r.PercentageDifference)
	}
}
