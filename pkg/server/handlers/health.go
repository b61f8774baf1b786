package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholargraph/teamgraph"
)

// Build information - can be set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// HealthHandler handles health check requests
type HealthHandler struct {
	graph teamgraph.TeamGraph
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(g teamgraph.TeamGraph) *HealthHandler {
	return &HealthHandler{graph: g}
}

// HealthCheck handles GET /health - basic liveness check
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "teamgraph",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

// LivenessCheck handles GET /live - Kubernetes liveness probe
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

// ReadinessCheck handles GET /ready - verifies the graph store answers
// queries before the instance receives traffic.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := gin.H{
		"status":    "ready",
		"service":   "teamgraph",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if h.graph != nil {
		start := time.Now()
		err := h.graph.HealthCheck(ctx)
		duration := time.Since(start)

		if err != nil {
			response["status"] = "not_ready"
			response["database"] = gin.H{
				"status":   "unhealthy",
				"error":    err.Error(),
				"duration": duration.String(),
			}
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
		response["database"] = gin.H{
			"status":   "healthy",
			"duration": duration.String(),
		}
	}

	c.JSON(http.StatusOK, response)
}
