package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.WithLabelValues(labels...).Write(&m))
	return m.GetCounter().GetValue()
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	a, b := New(), New()

	a.AuthGate.WithLabelValues("bypassed").Inc()

	assert.Equal(t, 1.0, counterValue(t, a.AuthGate, "bypassed"))
	assert.Equal(t, 0.0, counterValue(t, b.AuthGate, "bypassed"))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, http.StatusNotFound, 0.01)
	m.ObserveRequest(http.MethodGet, http.StatusForbidden, 0.02)

	assert.Equal(t, 2.0, counterValue(t, m.RequestsTotal, http.MethodGet, "4xx"))

	var hist dto.Metric
	obs, err := m.RequestDuration.GetMetricWithLabelValues(http.MethodGet)
	require.NoError(t, err)
	require.NoError(t, obs.(prometheus.Metric).Write(&hist))
	assert.Equal(t, uint64(2), hist.GetHistogram().GetSampleCount())
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(204))
	assert.Equal(t, "5xx", StatusClass(500))
	assert.Equal(t, "unknown", StatusClass(0))
	assert.Equal(t, "unknown", StatusClass(600))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.TokenFailures.WithLabelValues("expired").Inc()
	m.AuthzDenied.WithLabelValues(ReasonPortfolioPrivate).Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `portfolio_token_failures_total{reason="expired"} 1`)
	assert.Contains(t, string(body), `portfolio_authz_denied_total{reason="portfolio_private"} 1`)
}
