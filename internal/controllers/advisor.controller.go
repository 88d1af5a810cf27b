package controllers

import (
	"net/http"
	"strings"

	"gpuadvisor/internal/models"
	"gpuadvisor/internal/services"

	"github.com/gin-gonic/gin"
)

// AdviceRequest is the body of POST /api/advice. A question switches from
// a settings recommendation to free-form chat.
type AdviceRequest struct {
	Game       string               `json:"game"`
	Resolution string               `json:"resolution"`
	TargetFPS  int                  `json:"target_fps" binding:"omitempty,min=1"`
	Priority   string               `json:"priority" binding:"omitempty,oneof=quality balanced performance"`
	Question   string               `json:"question"`
	History    []models.ChatMessage `json:"history"`
}

// PostAdvice asks the AI advisor for settings or answers a question
func (h *Handlers) PostAdvice(c *gin.Context) {
	if h.Advisor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": services.ErrAdvisorDisabled.Error()})
		return
	}

	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Question) == "" && strings.TrimSpace(req.Game) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game or question is required"})
		return
	}
	if req.Game != "" && !h.Validator.ValidateName(req.Game) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game"})
		return
	}

	gpu := h.resolveGPU(c)
	if gpu == nil {
		return
	}

	if req.Question != "" {
		answer, err := h.Advisor.Chat(c.Request.Context(), gpu, req.Question, req.History)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"answer": answer})
		return
	}

	if req.Resolution == "" {
		req.Resolution = h.Preferences.Resolution
	}
	if req.TargetFPS == 0 {
		req.TargetFPS = h.Preferences.TargetFPS
	}
	if req.Priority == "" {
		req.Priority = h.Preferences.Priority
	}

	advice, err := h.Advisor.Recommend(c.Request.Context(), gpu, req.Game, req.Resolution, req.TargetFPS, req.Priority)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	h.Metrics.ObserveSettings(advice.Estimate)
	c.JSON(http.StatusOK, advice)
}
