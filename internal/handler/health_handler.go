package handler

import (
	"context"
	"net/http"
	"time"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports whether the console can reach the backend
type HealthHandler struct {
	service service.ProductService
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(s service.ProductService, timeout time.Duration) *HealthHandler {
	return &HealthHandler{service: s, timeout: timeout}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.service.CheckBackend(ctx); err != nil {
		logger.Error("Health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "backend": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": "healthy"})
}

// RegisterHealthRoutes registers the health check
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
