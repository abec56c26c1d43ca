package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"songblog-backend/internal/infrastructure/database"
	"songblog-backend/internal/shared/response"
)

type dbChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() (*database.PoolStats, error)
}

type cachePinger interface {
	Ping(ctx context.Context) error
}

type storageChecker interface {
	HealthCheck(ctx context.Context) error
}

// healthCheckHandler - GET /health. DB down → 503; Redis hoặc object storage down chỉ là degraded
func healthCheckHandler(db dbChecker, cache cachePinger, storage storageChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		health := gin.H{
			"status":    "UP",
			"database":  "UP",
			"cache":     "UP",
			"storage":   "UP",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		status := http.StatusOK
		if err := db.HealthCheck(ctx); err != nil {
			health["status"] = "DOWN"
			health["database"] = "DOWN"
			status = http.StatusServiceUnavailable
		}
		if stats, err := db.Stats(); err == nil {
			health["pool"] = stats
		}

		if cache == nil || cache.Ping(ctx) != nil {
			health["cache"] = "DOWN"
		}
		if storage == nil || storage.HealthCheck(ctx) != nil {
			health["storage"] = "DOWN"
		}

		if status != http.StatusOK {
			c.JSON(status, response.Response{
				Success: false,
				Data:    health,
				Error:   &response.Error{Code: "SERVICE_UNAVAILABLE", Message: "database unreachable"},
			})
			return
		}
		response.Success(c, status, health)
	}
}
