package services

import (
	"context"
	"log/slog"

	"gpuadvisor/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const GB = 1024 * 1024 * 1024

// GetCPUUsage returns CPU model and usage
func GetCPUUsage(ctx context.Context) (*models.CPUStatus, error) {
	percentage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, err
	}

	status := &models.CPUStatus{}
	if len(percentage) > 0 {
		status.UsagePercent = percentage[0]
	}

	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		slog.Warn("Could not get per-core CPU usage", "error", err)
	}
	status.PerCore = perCore

	if cores, err := cpu.CountsWithContext(ctx, false); err == nil {
		status.CoreCount = cores
	} else {
		slog.Warn("Could not get CPU core count", "error", err)
	}
	if threads, err := cpu.CountsWithContext(ctx, true); err == nil {
		status.ThreadCount = threads
	}

	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		status.ModelName = infos[0].ModelName
	}

	return status, nil
}

// GetMemoryUsage returns host memory usage
func GetMemoryUsage(ctx context.Context) (*models.MemoryStatus, error) {
	virtualMemory, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return &models.MemoryStatus{
		TotalGB:      float64(virtualMemory.Total) / GB,
		UsedGB:       float64(virtualMemory.Used) / GB,
		AvailableGB:  float64(virtualMemory.Available) / GB,
		UsagePercent: virtualMemory.UsedPercent,
	}, nil
}

// GetSystemStatus returns host status plus the current GPU and running games.
// Host readings that fail are left nil so a partial status is still useful.
func GetSystemStatus(ctx context.Context, cache *GPUCache, catalog *Catalog) *models.SystemStatus {
	status := &models.SystemStatus{}

	if cpuStatus, err := GetCPUUsage(ctx); err == nil {
		status.CPU = cpuStatus
	} else {
		slog.Warn("Failed to get CPU usage", "error", err)
	}

	if memStatus, err := GetMemoryUsage(ctx); err == nil {
		status.Memory = memStatus
	} else {
		slog.Warn("Failed to get memory usage", "error", err)
	}

	if cache != nil {
		if gpu, err := cache.Get(ctx); err == nil {
			status.GPU = gpu
		}
	}

	if catalog != nil {
		if games, err := GetRunningGames(ctx, catalog); err == nil {
			status.RunningGames = games
		} else {
			slog.Debug("Running game scan failed", "error", err)
		}
	}

	return status
}
