// Package metrics provides prometheus instrumentation for the admin core:
// query-cache effectiveness counters and backing-store request telemetry.
// Constructors take a Registerer so tests can run without touching the
// default registry; all methods tolerate a nil receiver so components can
// run unmetered.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "orderdesk"

// CacheMetrics counts query-cache activity.
type CacheMetrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	invalidations prometheus.Counter
	detailEvicted prometheus.Counter
}

// NewCacheMetrics creates and registers cache counters on reg.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	m := &CacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Collection reads served from a fresh cache entry.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Collection reads that required a store fetch.",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Cache invalidations triggered by confirmed mutations.",
		}),
		detailEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "detail_evictions_total",
			Help:      "Unreferenced detail entries evicted by the sweep job.",
		}),
	}

	reg.MustRegister(m.hits, m.misses, m.invalidations, m.detailEvicted)
	return m
}

// Hit records a collection read served from cache.
func (m *CacheMetrics) Hit() {
	if m == nil {
		return
	}
	m.hits.Inc()
}

// Miss records a collection read that fetched from the store.
func (m *CacheMetrics) Miss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}

// Invalidation records one mutation-driven invalidation.
func (m *CacheMetrics) Invalidation() {
	if m == nil {
		return
	}
	m.invalidations.Inc()
}

// DetailEvictions records n detail entries evicted by a sweep.
func (m *CacheMetrics) DetailEvictions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.detailEvicted.Add(float64(n))
}

// BackendMetrics observes requests issued to the backing store.
type BackendMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewBackendMetrics creates and registers backend request metrics on reg.
func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	m := &BackendMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Requests issued to the backing store.",
		}, []string{"op", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backing store request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	reg.MustRegister(m.requests, m.latency)
	return m
}

// Observe records one completed store request.
func (m *BackendMetrics) Observe(op, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(op, status).Inc()
	m.latency.WithLabelValues(op).Observe(seconds)
}
