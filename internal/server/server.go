package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pgsummarizer/internal/summarizer"
)

// PageFetcher turns a URL into plain text ready for summarization.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// HealthReporter exposes the latest completion endpoint probe result.
type HealthReporter interface {
	Healthy() bool
}

// Server is the HTTP surface of the summarization bridge.
type Server struct {
	router     *gin.Engine
	summarizer summarizer.Summarizer
	fetcher    PageFetcher
	health     HealthReporter
	log        *slog.Logger
}

func New(
	s summarizer.Summarizer,
	fetcher PageFetcher,
	health HealthReporter,
	log *slog.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	srv := &Server{
		router:     gin.New(),
		summarizer: s,
		fetcher:    fetcher,
		health:     health,
		log:        log,
	}

	srv.router.Use(gin.Recovery())
	srv.router.Use(requestLogger(log))

	srv.router.POST("/v1/summarize", srv.handleSummarize)
	srv.router.GET("/healthz", srv.handleHealthz)

	return srv
}

func (s *Server) Handler() http.Handler {
	return s.router
}
