// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup results.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

//nolint:gochecknoglobals // promauto collectors register once per process
var (
	// CacheLookups counts cache-aside lookups by operation and result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_cache_lookups_total",
			Help: "Cache-aside lookups by catalog operation and result (hit, miss)",
		},
		[]string{"operation", "result"},
	)

	// UpstreamRequests counts calls to the metadata service by endpoint and status.
	// A status of "error" means no HTTP response was received.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_upstream_requests_total",
			Help: "Requests sent to the upstream metadata service",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_upstream_request_duration_seconds",
			Help:    "Latency of upstream metadata requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinematch_circuit_breaker_state",
			Help: "Upstream circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_recommend_duration_seconds",
			Help:    "End-to-end duration of one recommendation request",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RecommendBranches counts signal branches executed, by signal.
	RecommendBranches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_recommend_branches_total",
			Help: "Signal branches fanned out during recommendation",
		},
		[]string{"signal"},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_recommend_candidates",
			Help:    "Distinct candidates gathered before filtering and truncation",
			Buckets: []float64{0, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)
