package services

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"gpuadvisor/internal/models"
)

const defaultHistoryPoints = 60

// HistoryCollector samples the GPU on an interval and keeps a bounded
// time series plus running aggregates for the session summary.
type HistoryCollector struct {
	mu            sync.RWMutex
	cache         *GPUCache
	gpuHistory    []models.GPUHistory
	maxDataPoints int
	running       bool
	cancel        context.CancelFunc
	done          chan struct{}
	now           func() time.Time

	// Session aggregates cover every sample, not just the retained window.
	gpuName  string
	started  time.Time
	samples  int
	sumTemp  float64
	maxTemp  float64
	sumUsage float64
	maxPower float64

	// OnSample is invoked outside the lock after each successful sample.
	OnSample func(gpu *models.GPUInfo, sample models.GPUHistory)
}

// NewHistoryCollector creates a collector reading from cache. maxPoints of
// zero keeps the default of 60 samples.
func NewHistoryCollector(cache *GPUCache, maxPoints int) *HistoryCollector {
	if maxPoints <= 0 {
		maxPoints = defaultHistoryPoints
	}
	return &HistoryCollector{
		cache:         cache,
		gpuHistory:    []models.GPUHistory{},
		maxDataPoints: maxPoints,
		now:           time.Now,
	}
}

// Start begins collecting GPU samples every interval until Stop is called
// or ctx is cancelled.
func (hc *HistoryCollector) Start(ctx context.Context, interval time.Duration) {
	hc.mu.Lock()
	if hc.running {
		hc.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	hc.running = true
	hc.cancel = cancel
	hc.done = done
	hc.started = hc.now()
	hc.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		hc.Collect(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				hc.Collect(ctx)
			}
		}
	}()

	slog.Info("History collector started", "interval", interval, "max_points", hc.maxDataPoints)
}

// Stop stops the history collector and waits for the sampling goroutine
// to exit.
func (hc *HistoryCollector) Stop() {
	hc.mu.Lock()
	if hc.cancel != nil {
		hc.cancel()
		hc.cancel = nil
	}
	done := hc.done
	hc.done = nil
	hc.running = false
	hc.mu.Unlock()

	// Collect takes the lock, so wait outside it
	if done != nil {
		<-done
	}
	slog.Info("History collector stopped")
}

// Collect takes one GPU sample. The provider is queried outside the lock so
// readers are not blocked by a slow nvidia-smi call.
func (hc *HistoryCollector) Collect(ctx context.Context) {
	gpu, err := hc.cache.Get(ctx)
	if err != nil {
		slog.Debug("GPU sample failed", "error", err)
		return
	}

	sample := models.GPUHistory{
		Timestamp:    hc.now(),
		Temperature:  gpu.Temperature,
		GPUUsage:     gpu.GPUUsage,
		MemoryUsage:  gpu.MemoryUsage,
		MemoryUsedMB: gpu.VRAMUsedMB,
		MemoryTotMB:  gpu.VRAMTotalMB,
		PowerDraw:    gpu.PowerDraw,
		PowerLimit:   gpu.PowerLimit,
	}

	hc.mu.Lock()
	if hc.started.IsZero() {
		hc.started = sample.Timestamp
	}
	hc.gpuName = gpu.Name
	hc.gpuHistory = append(hc.gpuHistory, sample)
	if len(hc.gpuHistory) > hc.maxDataPoints {
		hc.gpuHistory = hc.gpuHistory[1:]
	}
	hc.samples++
	hc.sumTemp += sample.Temperature
	hc.sumUsage += sample.GPUUsage
	if sample.Temperature > hc.maxTemp {
		hc.maxTemp = sample.Temperature
	}
	if sample.PowerDraw > hc.maxPower {
		hc.maxPower = sample.PowerDraw
	}
	onSample := hc.OnSample
	hc.mu.Unlock()

	if onSample != nil {
		onSample(gpu, sample)
	}
}

// Latest returns the most recent sample
func (hc *HistoryCollector) Latest() *models.GPUHistory {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	if len(hc.gpuHistory) == 0 {
		return nil
	}
	latest := hc.gpuHistory[len(hc.gpuHistory)-1]
	return &latest
}

// Window returns the samples taken within duration of now together with the
// session summary.
func (hc *HistoryCollector) Window(duration time.Duration) models.HistoricalDataWindow {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	cutoffTime := hc.now().Add(-duration)

	window := models.HistoricalDataWindow{GPU: []models.GPUHistory{}}
	for _, h := range hc.gpuHistory {
		if h.Timestamp.After(cutoffTime) {
			window.GPU = append(window.GPU, h)
		}
	}
	window.Summary = hc.summaryLocked()
	return window
}

// Session returns every retained sample with the session summary
func (hc *HistoryCollector) Session() models.SessionExport {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	return models.SessionExport{
		Summary: hc.summaryLocked(),
		Metrics: slices.Clone(hc.gpuHistory),
	}
}

// Summary returns aggregates over the whole session
func (hc *HistoryCollector) Summary() models.SessionSummary {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.summaryLocked()
}

func (hc *HistoryCollector) summaryLocked() models.SessionSummary {
	summary := models.SessionSummary{
		GPUName:        hc.gpuName,
		Samples:        hc.samples,
		MaxTemperature: hc.maxTemp,
		MaxPowerDraw:   hc.maxPower,
	}
	if !hc.started.IsZero() {
		summary.DurationSeconds = hc.now().Sub(hc.started).Seconds()
	}
	if hc.samples > 0 {
		summary.AvgTemperature = hc.sumTemp / float64(hc.samples)
		summary.AvgGPUUsage = hc.sumUsage / float64(hc.samples)
	}
	return summary
}
