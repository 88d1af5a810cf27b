package services

import (
	"context"
	"testing"
	"time"

	"gpuadvisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(maxPoints int) (*HistoryCollector, *countingProvider, *fakeClock) {
	provider := &countingProvider{}
	clock := newFakeClock()
	cache := NewGPUCache(provider, time.Nanosecond)
	cache.now = clock.Now
	hc := NewHistoryCollector(cache, maxPoints)
	hc.now = clock.Now
	return hc, provider, clock
}

func TestHistoryCollectorRingBuffer(t *testing.T) {
	hc, _, clock := newTestCollector(3)
	ctx := context.Background()

	assert.Nil(t, hc.Latest())
	for i := 0; i < 5; i++ {
		hc.Collect(ctx)
		clock.Advance(time.Second)
	}

	window := hc.Window(time.Hour)
	require.Len(t, window.GPU, 3, "oldest samples are dropped")
	assert.InDelta(t, 53.0, window.GPU[0].Temperature, 1e-9)
	assert.InDelta(t, 55.0, hc.Latest().Temperature, 1e-9)

	// Aggregates cover all five samples, not just the window
	summary := hc.Summary()
	assert.Equal(t, 5, summary.Samples)
	assert.Equal(t, "NVIDIA GeForce RTX 3070", summary.GPUName)
	assert.InDelta(t, 53.0, summary.AvgTemperature, 1e-9)
	assert.InDelta(t, 55.0, summary.MaxTemperature, 1e-9)
	assert.InDelta(t, 30.0, summary.AvgGPUUsage, 1e-9)
	assert.InDelta(t, 105.0, summary.MaxPowerDraw, 1e-9)
	assert.InDelta(t, 5.0, summary.DurationSeconds, 1e-9)
}

func TestHistoryCollectorWindow(t *testing.T) {
	hc, _, clock := newTestCollector(10)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		hc.Collect(ctx)
		clock.Advance(time.Minute)
	}

	window := hc.Window(150 * time.Second)
	assert.Len(t, window.GPU, 2)
	assert.Equal(t, 4, window.Summary.Samples)
}

func TestHistoryCollectorOnSample(t *testing.T) {
	hc, _, _ := newTestCollector(0)

	var got []models.GPUHistory
	hc.OnSample = func(gpu *models.GPUInfo, sample models.GPUHistory) {
		assert.Equal(t, "NVIDIA GeForce RTX 3070", gpu.Name)
		got = append(got, sample)
	}
	hc.Collect(context.Background())
	hc.Collect(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, 8192, got[0].MemoryTotMB)
	assert.Equal(t, defaultHistoryPoints, hc.maxDataPoints)
}

func TestHistoryCollectorSkipsFailedSamples(t *testing.T) {
	cache := NewGPUCache(&countingProvider{err: ErrNoGPU}, time.Second)
	hc := NewHistoryCollector(cache, 5)
	hc.Collect(context.Background())

	assert.Nil(t, hc.Latest())
	assert.Zero(t, hc.Summary().Samples)
}

func TestHistoryCollectorStartStop(t *testing.T) {
	provider := &countingProvider{}
	hc := NewHistoryCollector(NewGPUCache(provider, time.Nanosecond), 10)

	hc.Start(context.Background(), 10*time.Millisecond)
	hc.Start(context.Background(), 10*time.Millisecond) // no second loop
	assert.Eventually(t, func() bool { return hc.Summary().Samples >= 2 }, time.Second, 5*time.Millisecond)
	hc.Stop()

	hc.mu.RLock()
	running := hc.running
	hc.mu.RUnlock()
	assert.False(t, running)

	// Stop returns only after the loop exits, so no sample lands afterwards
	stopped := provider.Calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, provider.Calls())

	hc.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return provider.Calls() > stopped }, time.Second, 5*time.Millisecond)
	hc.Stop()
	hc.Stop() // idempotent
}
