package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"pgsummarizer/internal/settings"
	"pgsummarizer/internal/summarizer"
)

type stubSummarizer struct {
	summary string
	err     error
	gotText string
}

func (s *stubSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.gotText = text

	if s.err != nil {
		return "", s.err
	}

	return s.summary, nil
}

type stubFetcher struct {
	text string
	err  error
}

func (f *stubFetcher) Fetch(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

type stubHealth bool

func (h stubHealth) Healthy() bool {
	return bool(h)
}

func newTestServer(s summarizer.Summarizer, fetcher PageFetcher, health HealthReporter) *Server {
	return New(s, fetcher, health, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doRequest(srv *Server, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	return rec
}

func TestHandleSummarizeText(t *testing.T) {
	sum := &stubSummarizer{summary: "short version"}
	srv := newTestServer(sum, &stubFetcher{}, stubHealth(true))

	rec := doRequest(srv, http.MethodPost, "/v1/summarize", `{"text":"long input"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if got := gjson.Get(rec.Body.String(), "summary").String(); got != "short version" {
		t.Errorf("Expected summary %q, got %q", "short version", got)
	}

	if sum.gotText != "long input" {
		t.Errorf("Expected summarizer input %q, got %q", "long input", sum.gotText)
	}
}

func TestHandleSummarizeURL(t *testing.T) {
	sum := &stubSummarizer{summary: "page summary"}
	srv := newTestServer(sum, &stubFetcher{text: "page text"}, stubHealth(true))

	rec := doRequest(srv, http.MethodPost, "/v1/summarize", `{"url":"https://example.com/post"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if sum.gotText != "page text" {
		t.Errorf("Expected summarizer input %q, got %q", "page text", sum.gotText)
	}
}

func TestHandleSummarizeBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Invalid JSON", `{`},
		{"Neither text nor url", `{}`},
		{"Both text and url", `{"text":"a","url":"https://example.com"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := newTestServer(&stubSummarizer{}, &stubFetcher{}, stubHealth(true))

			rec := doRequest(srv, http.MethodPost, "/v1/summarize", test.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleSummarizeErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"Missing setting",
			&settings.MissingSettingError{Name: settings.KeyAPIKey},
			http.StatusServiceUnavailable,
		},
		{
			"Provider status error",
			&summarizer.StatusError{Code: http.StatusUnauthorized},
			http.StatusBadGateway,
		},
		{
			"Unexpected format",
			summarizer.ErrUnexpectedFormat,
			http.StatusBadGateway,
		},
		{
			"Transport error",
			errors.New("connection refused"),
			http.StatusBadGateway,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := newTestServer(&stubSummarizer{err: test.err}, &stubFetcher{}, stubHealth(true))

			rec := doRequest(srv, http.MethodPost, "/v1/summarize", `{"text":"input"}`)
			if rec.Code != test.wantStatus {
				t.Errorf("Expected status %d, got %d", test.wantStatus, rec.Code)
			}
		})
	}
}

func TestHandleSummarizeFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("dns failure")}
	srv := newTestServer(&stubSummarizer{}, fetcher, stubHealth(true))

	rec := doRequest(srv, http.MethodPost, "/v1/summarize", `{"url":"https://example.com"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", rec.Code)
	}
}

func TestHandleHealthz(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		wantStatus int
		wantBody   string
	}{
		{"Healthy", true, http.StatusOK, "ok"},
		{"Degraded", false, http.StatusServiceUnavailable, "degraded"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := newTestServer(&stubSummarizer{}, &stubFetcher{}, stubHealth(test.healthy))

			rec := doRequest(srv, http.MethodGet, "/healthz", "")
			if rec.Code != test.wantStatus {
				t.Errorf("Expected status %d, got %d", test.wantStatus, rec.Code)
			}

			if got := gjson.Get(rec.Body.String(), "status").String(); got != test.wantBody {
				t.Errorf("Expected status %q, got %q", test.wantBody, got)
			}
		})
	}
}
