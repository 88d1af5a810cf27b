package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gpuadvisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider reports a GPU whose temperature rises on every query
type countingProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingProvider) Detect(ctx context.Context) ([]models.GPUInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	p.calls++
	return []models.GPUInfo{{
		Name:        "NVIDIA GeForce RTX 3070",
		VRAMTotalMB: 8192,
		Temperature: float64(50 + p.calls),
		GPUUsage:    float64(10 * p.calls),
		PowerDraw:   float64(100 + p.calls),
	}}, nil
}

func (p *countingProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestGPUCacheTTL(t *testing.T) {
	provider := &countingProvider{}
	clock := newFakeClock()
	cache := NewGPUCache(provider, time.Second)
	cache.now = clock.Now
	ctx := context.Background()

	first, err := cache.Get(ctx)
	require.NoError(t, err)
	second, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.Calls())
	assert.Equal(t, first.Temperature, second.Temperature)

	clock.Advance(2 * time.Second)
	third, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, provider.Calls())
	assert.Greater(t, third.Temperature, first.Temperature)

	cache.Clear()
	_, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, provider.Calls())
}

func TestGPUCacheReturnsCopies(t *testing.T) {
	cache := NewGPUCache(&countingProvider{}, time.Minute)
	ctx := context.Background()

	gpu, err := cache.Get(ctx)
	require.NoError(t, err)
	gpu.Name = "mutated"

	again, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA GeForce RTX 3070", again.Name)
}

func TestGPUCacheError(t *testing.T) {
	cache := NewGPUCache(&countingProvider{err: ErrNoGPU}, 0)
	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoGPU)
}
