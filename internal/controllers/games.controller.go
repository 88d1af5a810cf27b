package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListGames returns catalog titles
// Query params: search, feature=raytracing|dlss|fsr
func (h *Handlers) ListGames(c *gin.Context) {
	var games []string
	switch {
	case c.Query("search") != "":
		games = h.Catalog.Search(c.Query("search"))
	case c.Query("feature") != "":
		games = h.Catalog.ByFeature(c.Query("feature"))
	default:
		games = h.Catalog.List()
	}
	if games == nil {
		games = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"games": games, "count": len(games)})
}

// GetGame returns a title's requirements
func (h *Handlers) GetGame(c *gin.Context) {
	game, err := h.Catalog.Get(c.Param("name"))
	if err != nil {
		suggestions := h.Catalog.Suggest(c.Param("name"), 5)
		if suggestions == nil {
			suggestions = []string{}
		}
		c.JSON(http.StatusNotFound, gin.H{
			"error":       err.Error(),
			"suggestions": suggestions,
		})
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetGameCompatibility grades the request GPU against a title
func (h *Handlers) GetGameCompatibility(c *gin.Context) {
	gpu := h.resolveGPU(c)
	if gpu == nil {
		return
	}
	c.JSON(http.StatusOK, h.Catalog.CheckCompatibility(gpu, c.Param("name")))
}
