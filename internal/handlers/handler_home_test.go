package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	portssvc "github.com/tallmate/trust-circle/internal/core/ports/services"
	"github.com/tallmate/trust-circle/internal/handlers"
	"github.com/tallmate/trust-circle/internal/metrics"
	"github.com/tallmate/trust-circle/internal/platform/config"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{}, &portssvc.ServiceContainer{Circle: new(MockCircleService)}, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("exposed when metrics are configured", func(t *testing.T) {
		r := gin.New()
		m := metrics.NewMetrics(prometheus.NewRegistry())
		handlers.RegisterRoutes(r, &config.Config{}, &portssvc.ServiceContainer{Circle: new(MockCircleService)}, nil, m)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})

	t.Run("absent without metrics", func(t *testing.T) {
		r := gin.New()
		handlers.RegisterRoutes(r, &config.Config{}, &portssvc.ServiceContainer{Circle: new(MockCircleService)}, nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
