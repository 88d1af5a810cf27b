package routes

import (
	"gpuadvisor/internal/controllers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterMonitorRoutes registers live GPU and host telemetry plus the
// Prometheus scrape endpoint.
func RegisterMonitorRoutes(r *gin.Engine, h *controllers.Handlers) {
	api := r.Group("/api")
	{
		api.GET("/gpu", h.GetGPU)
		api.GET("/gpu/history", h.GetGPUHistory)
		api.GET("/system", h.GetSystem)
	}

	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Metrics.Registry, promhttp.HandlerOpts{})))
	}
}
