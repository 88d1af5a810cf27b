package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gpuadvisor/internal/config"
	"gpuadvisor/internal/middleware"
	"gpuadvisor/internal/models"
	"gpuadvisor/internal/observability"
	"gpuadvisor/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers holds the services behind the HTTP API
type Handlers struct {
	Predictor   *services.Predictor
	Catalog     *services.Catalog
	GPU         *services.GPUCache
	History     *services.HistoryCollector
	Hub         *services.WebSocketHub
	Auth        *services.AuthService
	Advisor     *services.Advisor // nil when no API key is configured
	Metrics     *observability.Metrics
	Security    *middleware.SecurityLogger
	Validator   *middleware.InputValidator
	Preferences config.PreferencesConfig
	// AllowedOrigins restricts websocket upgrades
	AllowedOrigins []string
}

// resolveGPU returns the GPU a request is about: the descriptor named by the
// gpu query parameter, or the detected GPU. It writes the error response and
// returns nil on failure.
func (h *Handlers) resolveGPU(c *gin.Context) *models.GPUInfo {
	if name := strings.TrimSpace(c.Query("gpu")); name != "" {
		vram := 0
		if v := c.Query("vram_mb"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vram_mb"})
				return nil
			}
			vram = parsed
		}
		gpu := services.NewStaticProvider(name, vram, c.Query("architecture")).GPU
		return &gpu
	}

	if h.GPU == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": services.ErrNoGPU.Error()})
		return nil
	}
	gpu, err := h.GPU.Get(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNoGPU) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil
	}
	return gpu
}

// requireGame reads the game query parameter, writing 400 when absent
func requireGame(c *gin.Context) (string, bool) {
	game := strings.TrimSpace(c.Query("game"))
	if game == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game is required"})
		return "", false
	}
	return game, true
}

func (h *Handlers) resolution(c *gin.Context) string {
	return c.DefaultQuery("resolution", h.Preferences.Resolution)
}

func (h *Handlers) quality(c *gin.Context) string {
	return c.DefaultQuery("quality", h.Preferences.Quality)
}
