package routes

import (
	"gpuadvisor/internal/controllers"
	"gpuadvisor/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the WebSocket endpoint and token check.
// Token generation is done via the CLI only (no HTTP endpoint).
func RegisterAuthRoutes(r *gin.Engine, h *controllers.Handlers) {
	r.GET("/ws", h.HandleWebSocket)

	tokenLimiter := middleware.NewTokenRateLimiter()
	r.GET("/ws/token-status", middleware.RateLimitMiddleware(tokenLimiter, h.Security), h.HandleTokenStatus)
}
