// Package metrics exposes Prometheus metrics for the HTTP API.
//
// Metrics exposed (all namespaced with "webapp_"):
//
//  1. http_requests_total (counter): requests served.
//     Labels: method, route, status.
//  2. http_request_duration_seconds (histogram): request latency.
//     Labels: method, route.
//  3. validations_total (counter): request payload validations.
//     Labels: route, result (valid/invalid).
//
// Every metric lives on a private registry so tests can build as many
// Metrics values as they need.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "webapp"

// Validation results.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Metrics holds the collectors. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	validations *prometheus.CounterVec

	registry *prometheus.Registry
}

// New registers every collector on a fresh registry, including the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),

		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Request payload validations by route and result.",
		}, []string{"route", "result"}),

		registry: registry,
	}
}

// ObserveRequest records one served request. route should be the route
// template, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordValidation counts one payload validation on route.
func (m *Metrics) RecordValidation(route string, valid bool) {
	if m == nil {
		return
	}
	result := ResultValid
	if !valid {
		result = ResultInvalid
	}
	m.validations.WithLabelValues(route, result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
