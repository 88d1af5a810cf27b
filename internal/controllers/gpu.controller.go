package controllers

import (
	"errors"
	"net/http"
	"time"

	"gpuadvisor/internal/services"

	"github.com/gin-gonic/gin"
)

// GetGPU returns the current GPU snapshot
// Query params: refresh=true bypasses the cached reading
func (h *Handlers) GetGPU(c *gin.Context) {
	if h.GPU == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": services.ErrNoGPU.Error()})
		return
	}
	if c.Query("refresh") == "true" {
		h.GPU.Clear()
	}
	gpu, err := h.GPU.Get(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNoGPU) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gpu": gpu, "timestamp": time.Now()})
}

// GetGPUHistory returns recent GPU samples and the session summary
// Query params: duration=5m|10m|1h (default: 10m)
func (h *Handlers) GetGPUHistory(c *gin.Context) {
	if h.History == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history collector not running"})
		return
	}

	durationStr := c.DefaultQuery("duration", "10m")
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration format"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"duration": durationStr,
		"data":     h.History.Window(duration),
		"summary":  h.History.Summary(),
	})
}

// GetSystem returns host status with the GPU and any running games
func (h *Handlers) GetSystem(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetSystemStatus(c.Request.Context(), h.GPU, h.Catalog))
}
