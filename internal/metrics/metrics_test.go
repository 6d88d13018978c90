package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/tallmate/trust-circle/internal/metrics"
)

func TestNewMetrics(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	assert.NotNil(t, m.AuditStamps)
	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.RateLimitHits)
}

func TestRecordStamp(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	m.RecordStamp("before_create")
	m.RecordStamp("before_update")
	m.RecordStamp("before_update")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditStamps.WithLabelValues("before_create")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuditStamps.WithLabelValues("before_update")))
}

func TestRecordHTTPRequest(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	m.RecordHTTPRequest("POST", "/api/v1/circles", 201, 20*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/circles", "201")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestRecordRateLimitHit(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	m.RecordRateLimitHit("/api/v1/circles")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitHits.WithLabelValues("/api/v1/circles")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RecordStamp("before_create")
		m.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
		m.RecordRateLimitHit("/api/v1/circles")
	})
}
