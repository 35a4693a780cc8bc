// Package metrics exposes Prometheus collectors for the auth layer and the
// HTTP surface.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values of AuthzDenied.
const (
	ReasonNotFoundOrUnauthorized = "not_found_or_unauthorized"
	ReasonPortfolioPrivate       = "portfolio_private"
	ReasonUserNotFound           = "user_not_found"
)

// Metrics holds every collector of the service. Each instance owns its
// registry, so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	// AuthGate counts gate outcomes by state.
	AuthGate *prometheus.CounterVec

	// TokenFailures counts rejected tokens by reason.
	TokenFailures *prometheus.CounterVec

	// AuthzDenied counts ownership and visibility denials by reason.
	AuthzDenied *prometheus.CounterVec

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AuthGate: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_auth_gate_total",
				Help: "Auth gate outcomes",
			},
			[]string{"state"},
		),
		TokenFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_token_failures_total",
				Help: "Rejected bearer tokens",
			},
			[]string{"reason"},
		),
		AuthzDenied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_authz_denied_total",
				Help: "Authorization denials",
			},
			[]string{"reason"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "Total requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "Request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	m.registry.MustRegister(
		m.AuthGate,
		m.TokenFailures,
		m.AuthzDenied,
		m.RequestsTotal,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method string, status int, seconds float64) {
	m.RequestsTotal.WithLabelValues(method, StatusClass(status)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(seconds)
}

// StatusClass maps an HTTP status code to its class label, e.g. "4xx".
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
