package handlers

import (
	"net/http"
	"time"

	"sui-balance-api/internal/models"
	"sui-balance-api/internal/services"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles readiness, ping and probe endpoints
type HealthHandler struct {
	upstreamHealth *services.UpstreamHealthChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(upstreamHealth *services.UpstreamHealthChecker) *HealthHandler {
	return &HealthHandler{
		upstreamHealth: upstreamHealth,
	}
}

// GetReady handles GET /api/v1
func (h *HealthHandler) GetReady(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Ready"})
}

// GetPing handles GET /api/ping
func (h *HealthHandler) GetPing(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "pong"})
}

// GetLiveness returns a simple liveness check
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now(),
	})
}

// GetReadiness reports whether the upstream node answers
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	check := h.upstreamHealth.CheckHealth(c.Request.Context())

	if check.Status == services.HealthStatusUnhealthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not_ready",
			"upstream":  check,
			"timestamp": time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"upstream":  check,
		"timestamp": time.Now(),
	})
}
