package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign_pulse/internal/domain"
)

func (s *Server) overview(c *gin.Context) {
	overview, err := s.analytics.Overview(c.Request.Context())
	if err != nil {
		s.logger.Error("overview failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (s *Server) timeline(c *gin.Context) {
	candidateID, err := candidateIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, err := intParam(c, "days", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := s.analytics.Timeline(c.Request.Context(), candidateID, days)
	if err != nil {
		s.logger.Error("timeline failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load timeline"})
		return
	}
	if points == nil {
		points = []domain.TimelinePoint{}
	}

	c.JSON(http.StatusOK, gin.H{"timeline": points})
}

func (s *Server) themeDistribution(c *gin.Context) {
	candidateID, err := candidateIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	distribution, err := s.analytics.ThemeDistribution(c.Request.Context(), candidateID)
	if err != nil {
		s.logger.Error("theme distribution failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load theme distribution"})
		return
	}

	c.JSON(http.StatusOK, distribution)
}

func (s *Server) rankings(c *gin.Context) {
	candidateID, err := candidateIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, err := intParam(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offset, err := intParam(c, "offset", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := s.analytics.Rankings(c.Request.Context(), domain.RankingQuery{
		CandidateID: candidateID,
		SortBy:      c.Query("sort_by"),
		Order:       c.Query("order"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		s.logger.Error("rankings failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load rankings"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) comparison(c *gin.Context) {
	comparison, err := s.analytics.Comparison(c.Request.Context())
	if err != nil {
		s.logger.Error("comparison failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load comparison"})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func (s *Server) wordCloud(c *gin.Context) {
	candidateID, err := candidateIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, err := intParam(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cloud, err := s.analytics.WordCloud(c.Request.Context(), candidateID, limit)
	if err != nil {
		s.logger.Error("word cloud failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load word cloud"})
		return
	}

	c.JSON(http.StatusOK, cloud)
}
