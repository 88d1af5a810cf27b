package routes

import (
	"gpuadvisor/internal/controllers"
	"gpuadvisor/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the security middleware chain and every
// route group registered.
func NewRouter(h *controllers.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(nil))
	r.Use(middleware.MetricsMiddleware(h.Metrics))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(h.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(), h.Security))
	r.Use(middleware.ValidateQueryMiddleware(h.Validator, h.Security))

	RegisterPredictionRoutes(r, h)
	RegisterGameRoutes(r, h)
	RegisterMonitorRoutes(r, h)
	RegisterAuthRoutes(r, h)

	return r
}
