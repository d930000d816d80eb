// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests.",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests.",
		},
	)

	// Result Cache metrics.
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "result_cache_hits_total",
			Help: "Total number of Result Cache hits.",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "result_cache_misses_total",
			Help: "Total number of Result Cache misses.",
		},
	)

	// Recommendation pipeline metrics.
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of a full recommend call, by method.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method"},
	)

	RecommendCandidateSurvivors = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidate_survivors",
			Help:    "Number of CF candidates surviving Stage 1 retrieval per request.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
		},
	)

	RecommendErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_errors_total",
			Help: "Total number of recommend failures, by error kind.",
		},
		[]string{"kind"},
	)

	// Resource load-state gauges, set once at startup.
	ResourceLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "resource_loaded",
			Help: "Whether a startup resource is loaded (1) or absent (0).",
		},
		[]string{"resource"},
	)
)
