package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ItemCreated("data_query")
	m.ItemCreated("data_query")
	m.ItemCreateFailed("easy_api", "unauthenticated")
	m.AuthAttempt("failure")
	m.ObserveRequest("POST", "/api/v1/data-query/", "201", 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ItemsCreatedTotal.WithLabelValues("data_query")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ItemCreateErrors.WithLabelValues("easy_api", "unauthenticated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttemptsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/data-query/", "201")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ItemCreated("data_query")
		m.ItemCreateFailed("data_query", "validation")
		m.AuthAttempt("success")
		m.ObserveRequest("GET", "/ping", "200", time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ItemCreated("app_gen")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `datawise_items_created_total{kind="app_gen"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
