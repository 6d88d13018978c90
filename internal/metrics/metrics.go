package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported by the service.
type Metrics struct {
	// Auditing
	AuditStamps *prometheus.CounterVec // records stamped, by lifecycle event

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitHits       *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg, or the default registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		AuditStamps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_timestamp_stamps_total",
				Help: "Total number of records stamped by the auditing hooks, by lifecycle event",
			},
			[]string{"event"},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status code",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_rate_limit_hits_total",
				Help: "Total number of requests rejected by the rate limiter, by route",
			},
			[]string{"path"},
		),
	}
}

// RecordStamp counts one record stamped for event. Safe on a nil receiver.
func (m *Metrics) RecordStamp(event string) {
	if m == nil {
		return
	}
	m.AuditStamps.WithLabelValues(event).Inc()
}

// RecordHTTPRequest records a finished request and its latency.
func (m *Metrics) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRateLimitHit records a rejected request for path.
func (m *Metrics) RecordRateLimitHit(path string) {
	if m == nil {
		return
	}
	m.RateLimitHits.WithLabelValues(path).Inc()
}
