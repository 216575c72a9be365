package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ModelInfo exposes what the health endpoints need to know about the
// loaded classifier.
type ModelInfo interface {
	Version() string
}

type HealthHandler struct {
	model ModelInfo
}

func NewHealthHandler(model ModelInfo) *HealthHandler {
	return &HealthHandler{model: model}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check model artifact
	if h.model == nil {
		checks["model"] = "unhealthy: not loaded"
		status = "unhealthy"
	} else {
		checks["model"] = "loaded (version " + h.model.Version() + ")"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if h.model == nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "not ready",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
