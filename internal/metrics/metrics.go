// Package metrics exposes the Prometheus instruments for dataset builds and
// the query API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "joblens"

// Metrics holds all JobLens instruments.
type Metrics struct {
	// Build metrics
	BuildDuration    prometheus.Histogram
	BuildsTotal      *prometheus.CounterVec
	SnapshotRecords  prometheus.Gauge
	SnapshotBuiltAt  prometheus.Gauge
	ClassifiedTitles *prometheus.CounterVec
	FieldFallbacks   *prometheus.CounterVec
	IngestOrigin     *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimited     prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers every instrument on reg. Passing a fresh registry keeps
// tests isolated from the global one.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{gatherer: reg}
	initBuildMetrics(m, f)
	initHTTPMetrics(m, f)
	return m
}

func initBuildMetrics(m *Metrics, f promauto.Factory) {
	m.BuildDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "build_duration_seconds",
		Help:      "Time to fetch, classify and normalize one dataset snapshot",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})

	m.BuildsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "builds_total",
		Help:      "Dataset builds by result (success, failure, skipped)",
	}, []string{"result"})

	m.SnapshotRecords = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_records",
		Help:      "Records in the published snapshot",
	})

	m.SnapshotBuiltAt = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_built_timestamp_seconds",
		Help:      "Unix time the published snapshot was built",
	})

	m.ClassifiedTitles = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classified_titles_total",
		Help:      "Distinct titles classified, by cascade stage",
	}, []string{"stage"})

	m.FieldFallbacks = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "field_fallbacks_total",
		Help:      "Records whose field fell back to a default",
	}, []string{"field"})

	m.IngestOrigin = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_origin_total",
		Help:      "Raw document sets loaded, by origin",
	}, []string{"origin"})
}

func initHTTPMetrics(m *Metrics, f promauto.Factory) {
	m.RequestsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code",
	}, []string{"route", "code"})

	m.RequestDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	m.RateLimited = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Requests rejected by the rate limiter",
	})
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
