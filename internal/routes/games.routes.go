package routes

import (
	"gpuadvisor/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterGameRoutes(r *gin.Engine, h *controllers.Handlers) {
	games := r.Group("/api/games")
	{
		games.GET("", h.ListGames)
		games.GET("/:name", h.GetGame)
		games.GET("/:name/compatibility", h.GetGameCompatibility)
	}
}
