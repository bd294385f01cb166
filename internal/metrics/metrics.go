// Package metrics holds the Prometheus collectors for the server and worker.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "editorial"

type Metrics struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	workerEvents *prometheus.CounterVec
}

// New registers the collectors on a private registry together with the
// Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_operations_total",
			Help:      "Workflow operations by outcome.",
		}, []string{"operation", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		workerEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_events_total",
			Help:      "Workflow events handled by the worker.",
		}, []string{"event_type", "outcome"}),
	}

	m.registry.MustRegister(
		m.operations,
		m.httpDuration,
		m.workerEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) RecordOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveHTTP records a finished request. route is the matched pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordWorkerEvent(eventType, outcome string) {
	m.workerEvents.WithLabelValues(eventType, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
