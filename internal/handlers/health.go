package handlers

import (
  "net/http"
  "time"

  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/services"
)

type HealthHandler struct {
  healthService services.HealthService
}

func NewHealthHandler(healthService services.HealthService) *HealthHandler {
  return &HealthHandler{healthService: healthService}
}

func (hh *HealthHandler) Check(c *gin.Context) {
  status, err := hh.healthService.Check(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{
      "status":    "unhealthy",
      "timestamp": time.Now().UTC(),
      "database":  "disconnected",
      "error":     err.Error(),
    })
    return
  }
  c.JSON(http.StatusOK, status)
}

func (hh *HealthHandler) DBStats(c *gin.Context) {
  stats, err := hh.healthService.Stats(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get database stats"})
    return
  }
  c.JSON(http.StatusOK, stats)
}
