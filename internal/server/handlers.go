package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pgsummarizer/internal/settings"
	"pgsummarizer/internal/summarizer"
)

type summarizeRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})

		return
	}

	if (req.Text == "") == (req.URL == "") {
		c.JSON(http.StatusBadRequest,
			errorResponse{Error: "exactly one of text or url is required"})

		return
	}

	ctx := c.Request.Context()

	text := req.Text
	if req.URL != "" {
		pageText, err := s.fetcher.Fetch(ctx, req.URL)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to fetch page",
				"error", err,
				"url", req.URL)
			c.JSON(http.StatusBadGateway, errorResponse{Error: "failed to fetch page"})

			return
		}
		text = pageText
	}

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to summarize",
			"error", err,
			"textLength", len(text))

		status, message := summarizeErrorStatus(err)
		c.JSON(status, errorResponse{Error: message})

		return
	}

	c.JSON(http.StatusOK, summarizeResponse{Summary: summary})
}

// summarizeErrorStatus maps bridge errors to response codes: a missing
// credential is an operator problem (503), everything else on the provider
// path is a bad gateway.
func summarizeErrorStatus(err error) (int, string) {
	var missing *settings.MissingSettingError
	var statusErr *summarizer.StatusError

	switch {
	case errors.As(err, &missing):
		return http.StatusServiceUnavailable, missing.Error()
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, statusErr.Error()
	case errors.Is(err, summarizer.ErrUnexpectedFormat):
		return http.StatusBadGateway, summarizer.ErrUnexpectedFormat.Error()
	default:
		return http.StatusBadGateway, "summarization failed"
	}
}

func (s *Server) handleHealthz(c *gin.Context) {
	if !s.health.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
