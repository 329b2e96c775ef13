package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign_pulse/internal/domain"
)

func (s *Server) generateSuggestions(c *gin.Context) {
	candidateID, err := candidateIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.suggestions.Generate(c.Request.Context(), candidateID)
	if err != nil {
		s.logger.Error("generate suggestions failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate suggestions"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) suggestionHistory(c *gin.Context) {
	limit, err := intParam(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insights, err := s.suggestions.History(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("suggestion history failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load suggestions"})
		return
	}
	if insights == nil {
		insights = []domain.Insight{}
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
