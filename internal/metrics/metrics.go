package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samvad-hq/hyperion-client/internal/logger"
	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
)

const namespace = "hyperion"

// Metrics holds the collectors of the client and the watcher.
type Metrics struct {
	gatherer prometheus.Gatherer

	calls        *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	snapshots    *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	return NewWith(reg, reg)
}

// NewWith registers the collectors on reg and serves them from g.
func NewWith(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: g,
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Hyperion API calls by endpoint, status code and outcome.",
		}, []string{"endpoint", "code", "outcome"}),
		callDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_duration_seconds",
			Help:      "Latency of Hyperion API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		snapshots: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "watcher_snapshots_total",
			Help:      "Watcher poll results by query and result.",
		}, []string{"query_id", "result"}),
	}
}

// ObserveCall implements hyperion.Observer.
func (m *Metrics) ObserveCall(endpoint string, statusCode int, elapsed time.Duration, err error) {
	m.calls.WithLabelValues(endpoint, strconv.Itoa(statusCode), outcome(err)).Inc()
	m.callDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	var apiErr *hyperion.APIError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, hyperion.ErrNullResponse):
		return "null_response"
	case errors.As(err, &apiErr):
		return "unexpected_status"
	default:
		return "transport_error"
	}
}

func (m *Metrics) SnapshotPublished(queryID string) {
	m.snapshots.WithLabelValues(queryID, "published").Inc()
}

func (m *Metrics) SnapshotUnchanged(queryID string) {
	m.snapshots.WithLabelValues(queryID, "unchanged").Inc()
}

func (m *Metrics) QueryFailed(queryID string) {
	m.snapshots.WithLabelValues(queryID, "failed").Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Serve runs a /metrics listener on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, log logger.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoObj("serving prometheus metrics", "metrics_addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
