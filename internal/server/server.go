package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Server exposes the pipeline trigger, the analytics read surface and the
// suggestion endpoints over HTTP.
type Server struct {
	pipeline    PipelineService
	analytics   AnalyticsService
	suggestions SuggestionService
	db          Pinger
	scheduler   Liveness
	logger      *slog.Logger
}

func New(
	pipeline PipelineService,
	analytics AnalyticsService,
	suggestions SuggestionService,
	db Pinger,
	scheduler Liveness,
	logger *slog.Logger,
) *Server {
	return &Server{
		pipeline:    pipeline,
		analytics:   analytics,
		suggestions: suggestions,
		db:          db,
		scheduler:   scheduler,
		logger:      logger.With("component", "server"),
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", s.health)

	api := router.Group("/api/v1")

	pipeline := api.Group("/pipeline")
	pipeline.POST("/run", s.triggerRun)
	pipeline.GET("/status", s.pipelineStatus)

	analytics := api.Group("/analytics")
	analytics.GET("/overview", s.overview)
	analytics.GET("/sentiment-timeline", s.timeline)
	analytics.GET("/themes", s.themeDistribution)
	analytics.GET("/posts", s.rankings)
	analytics.GET("/comparison", s.comparison)
	analytics.GET("/wordcloud", s.wordCloud)

	api.POST("/suggestions", s.generateSuggestions)
	api.GET("/suggestions", s.suggestionHistory)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
