package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign_pulse/internal/domain"
)

func (s *Server) triggerRun(c *gin.Context) {
	run, err := s.pipeline.Trigger(c.Request.Context(), domain.TriggerManual)
	if errors.Is(err, domain.ErrConflictingRun) {
		c.JSON(http.StatusConflict, gin.H{"error": "a run is already in progress"})
		return
	}
	if err != nil {
		s.logger.Error("trigger run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start run"})
		return
	}

	c.JSON(http.StatusAccepted, run)
}

func (s *Server) pipelineStatus(c *gin.Context) {
	status, err := s.pipeline.Status(c.Request.Context())
	if err != nil {
		s.logger.Error("pipeline status failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load pipeline status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
