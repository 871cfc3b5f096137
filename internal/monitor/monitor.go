package monitor

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
)

const (
	ProbeSpec = "*/5 * * * *"

	probeTimeout = 10 * time.Second
)

// Monitor periodically probes the completion endpoint and keeps the latest
// reachability result for health reporting. It never retries the summarize
// path itself; it is purely observational.
type Monitor struct {
	ctx      context.Context
	cron     *cron.Cron
	client   *resty.Client
	probeURL string
	healthy  atomic.Bool
	log      *slog.Logger
}

func New(ctx context.Context, probeURL string, log *slog.Logger) *Monitor {
	m := &Monitor{
		ctx:      ctx,
		cron:     cron.New(),
		client:   resty.New().SetTimeout(probeTimeout),
		probeURL: probeURL,
		log:      log,
	}

	// Optimistic until the first probe completes.
	m.healthy.Store(true)

	return m
}

func (m *Monitor) Start() error {
	if _, err := m.cron.AddFunc(ProbeSpec, m.probe); err != nil {
		return err
	}

	m.cron.Start()

	return nil
}

func (m *Monitor) Stop() {
	m.cron.Stop()
}

// Healthy reports the result of the most recent probe.
func (m *Monitor) Healthy() bool {
	return m.healthy.Load()
}

func (m *Monitor) probe() {
	ctx, cancel := context.WithTimeout(m.ctx, probeTimeout)
	defer cancel()

	resp, err := m.client.R().SetContext(ctx).Head(m.probeURL)

	// Any HTTP response means the endpoint is reachable; unauthenticated
	// probes normally get 401/405. Only transport failures and 5xx count
	// as degraded.
	healthy := err == nil && resp.StatusCode() < http.StatusInternalServerError

	m.healthy.Store(healthy)

	if !healthy {
		m.log.WarnContext(ctx, "Completion endpoint probe failed",
			"error", err,
			"probeURL", m.probeURL)
	}
}
