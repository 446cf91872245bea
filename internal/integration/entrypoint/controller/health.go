// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	storeDriver  string
	storeChecker HealthChecker
	cacheChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil checker reports its dependency as disabled.
func NewHealthController(storeDriver string, storeChecker, cacheChecker HealthChecker) *HealthController {
	return &HealthController{
		storeDriver:  storeDriver,
		storeChecker: storeChecker,
		cacheChecker: cacheChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := checkStatus(ctx, h.storeChecker)
	status := "ok"
	httpStatus := http.StatusOK
	if dbStatus == "disconnected" {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Store:     h.storeDriver,
		Database:  dbStatus,
		Cache:     checkStatus(ctx, h.cacheChecker),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func checkStatus(ctx context.Context, checker HealthChecker) string {
	if checker == nil {
		return "disabled"
	}
	if err := checker(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}
