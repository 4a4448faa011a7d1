// Package metrics holds the go-link server's prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Redirect results, used as the "result" label.
const (
	ResultRedirect = "redirect"
	ResultNotFound = "not_found"
	ResultNotURL   = "not_url"
	ResultError    = "error"
)

// Metrics owns a private registry so several servers can coexist in one process.
type Metrics struct {
	registry       *prometheus.Registry
	RedirectsTotal *prometheus.CounterVec
}

// New registers the go-link collectors plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RedirectsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lc_redirects_total",
				Help: "Total number of go-link lookups by result",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.RedirectsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Redirect counts one lookup with the given result.
func (m *Metrics) Redirect(result string) {
	m.RedirectsTotal.WithLabelValues(result).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
