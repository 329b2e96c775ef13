package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("database ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "down",
		})
		return
	}

	payload := gin.H{
		"status":            "ok",
		"database":          "up",
		"scheduler_running": s.scheduler.Running(),
	}

	// Last scrape is informational, a failing lookup does not degrade health.
	if status, err := s.pipeline.Status(ctx); err == nil && status.LastSuccessAt != nil {
		payload["last_scrape"] = status.LastSuccessAt
	}

	c.JSON(http.StatusOK, payload)
}
