package monitor

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestMonitor(probeURL string) *Monitor {
	return New(context.Background(), probeURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantHealthy bool
	}{
		{"OK", http.StatusOK, true},
		{"Unauthorized still reachable", http.StatusUnauthorized, true},
		{"Method not allowed still reachable", http.StatusMethodNotAllowed, true},
		{"Server error", http.StatusInternalServerError, false},
		{"Bad gateway", http.StatusBadGateway, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
			}))
			defer srv.Close()

			m := newTestMonitor(srv.URL)
			m.probe()

			if got := m.Healthy(); got != test.wantHealthy {
				t.Errorf("Expected healthy=%v, got %v", test.wantHealthy, got)
			}
		})
	}
}

func TestProbeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	m := newTestMonitor(srv.URL)
	m.probe()

	if m.Healthy() {
		t.Error("Expected unhealthy after transport failure")
	}
}

func TestHealthyBeforeFirstProbe(t *testing.T) {
	m := newTestMonitor("http://127.0.0.1:0")

	if !m.Healthy() {
		t.Error("Expected optimistic healthy before first probe")
	}
}
