package services

import (
	"context"
	"sync"
	"time"

	"gpuadvisor/internal/models"
)

// GPUCache holds the primary GPU reading with a TTL so that dashboards,
// the history collector and API handlers share one nvidia-smi call per
// interval.
type GPUCache struct {
	mu        sync.RWMutex
	provider  GPUProvider
	gpu       *models.GPUInfo
	cacheTime time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewGPUCache wraps provider with a cache. A ttl of zero means one second.
func NewGPUCache(provider GPUProvider, ttl time.Duration) *GPUCache {
	if ttl <= 0 {
		ttl = time.Second
	}
	return &GPUCache{provider: provider, ttl: ttl, now: time.Now}
}

func (c *GPUCache) isValid() bool {
	return c.gpu != nil && c.now().Sub(c.cacheTime) < c.ttl
}

// Get returns the cached GPU if still valid, otherwise queries the provider.
// Callers receive a copy.
func (c *GPUCache) Get(ctx context.Context) (*models.GPUInfo, error) {
	c.mu.RLock()
	if c.isValid() {
		gpu := *c.gpu
		c.mu.RUnlock()
		return &gpu, nil
	}
	c.mu.RUnlock()

	// Query outside the lock; nvidia-smi can take hundreds of milliseconds.
	gpu, err := PrimaryGPU(ctx, c.provider)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.gpu = gpu
	c.cacheTime = c.now()
	c.mu.Unlock()

	cp := *gpu
	return &cp, nil
}

// Clear drops the cached reading so the next Get queries the provider
func (c *GPUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gpu = nil
}
