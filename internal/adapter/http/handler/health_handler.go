package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	predictor Pinger
}

// NewHealthHandler creates a new health handler. predictor may be nil.
func NewHealthHandler(predictor Pinger) *HealthHandler {
	return &HealthHandler{predictor: predictor}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health.
// The form keeps serving when the prediction service is down, so its state is
// reported but does not make the form unhealthy.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := map[string]string{"form": "ok"}
	if h.predictor != nil {
		if err := h.predictor.Ping(ctx); err != nil {
			components["predictor"] = "error: " + err.Error()
		} else {
			components["predictor"] = "ok"
		}
	} else {
		components["predictor"] = "not configured"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:     "healthy",
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.predictor != nil {
		if err := h.predictor.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "prediction service unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
