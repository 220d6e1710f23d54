package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
type Metrics struct {
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	UpstreamFetchesTotal  *prometheus.CounterVec
	UpstreamFetchDuration *prometheus.HistogramVec
	CacheLookupsTotal     *prometheus.CounterVec
	ExtractionMissesTotal *prometheus.CounterVec
	CacheWarmsTotal       *prometheus.CounterVec
}

// New registers the collectors with reg. Tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		UpstreamFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetches_total",
				Help: "Total number of outbound fetches.",
			},
			[]string{"source", "outcome"}, // outcome: success, network, status
		),
		UpstreamFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_fetch_duration_seconds",
				Help:    "Duration of outbound fetches.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"source"},
		),
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_lookups_total",
				Help: "Response cache lookups by result.",
			},
			[]string{"endpoint", "result"}, // result: hit, miss, error
		),
		ExtractionMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extraction_misses_total",
				Help: "Optional fields that could not be extracted.",
			},
			[]string{"field"},
		),
		CacheWarmsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_warms_total",
				Help: "Product pages processed by the cache warmer.",
			},
			[]string{"outcome"}, // outcome: success, failure
		),
	}
}

func (m *Metrics) ObserveFetch(source, outcome string, seconds float64) {
	m.UpstreamFetchesTotal.WithLabelValues(source, outcome).Inc()
	m.UpstreamFetchDuration.WithLabelValues(source).Observe(seconds)
}

func (m *Metrics) IncCacheLookup(endpoint, result string) {
	m.CacheLookupsTotal.WithLabelValues(endpoint, result).Inc()
}

func (m *Metrics) IncExtractionMiss(field string) {
	m.ExtractionMissesTotal.WithLabelValues(field).Inc()
}

func (m *Metrics) IncCacheWarm(outcome string) {
	m.CacheWarmsTotal.WithLabelValues(outcome).Inc()
}
