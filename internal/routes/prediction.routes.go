package routes

import (
	"gpuadvisor/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterPredictionRoutes registers the estimation, search and comparison
// endpoints and the AI advisor.
func RegisterPredictionRoutes(r *gin.Engine, h *controllers.Handlers) {
	api := r.Group("/api")
	{
		api.GET("/predict", h.GetPrediction)
		api.GET("/predict/qualities", h.GetQualitySweep)
		api.GET("/predict/resolutions", h.GetResolutionSweep)
		api.GET("/optimize", h.GetOptimalSettings)
		api.GET("/compare", h.GetComparison)
		api.POST("/advice", h.PostAdvice)
	}
}
