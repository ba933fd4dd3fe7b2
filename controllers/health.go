package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckResponse represents the health check response structure
type HealthCheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// HealthCheck returns a handler reporting process and store health.
func HealthCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disconnected"
		if store != nil && store.Ping(c.Request.Context()) == nil {
			dbStatus = "connected"
		}

		status := http.StatusOK
		response := HealthCheckResponse{
			Status:   "ok",
			Database: dbStatus,
		}
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
			response.Status = "unavailable"
		}

		c.JSON(status, response)
	}
}
