package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Independent(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()

	first.OrdersCreatedTotal.Inc()
	first.OrdersCreatedTotal.Inc()
	second.SeatConflictsTotal.Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(first.OrdersCreatedTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(second.OrdersCreatedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(second.SeatConflictsTotal))
}

func TestRegistry_Handler(t *testing.T) {
	reg := NewRegistry()
	reg.HTTPRequestsTotal.WithLabelValues("/api/v1/flights", http.MethodGet, "200").Inc()

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `airport_http_requests_total{method="GET",route="/api/v1/flights",status_code="200"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
