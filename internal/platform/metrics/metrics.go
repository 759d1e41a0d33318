// Package metrics provides Prometheus metrics of shelf analytics service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelf_analytics",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks HTTP request handling duration.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shelf_analytics",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP request handling in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	// MatchingSubmissionsTotal tracks matching task decisions by action.
	MatchingSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelf_analytics",
			Subsystem: "matching",
			Name:      "submissions_total",
			Help:      "Total number of matching task decisions by action",
		},
		[]string{"action"},
	)

	// URLMatchingResultsTotal tracks consumed url matching results.
	URLMatchingResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelf_analytics",
			Subsystem: "matching",
			Name:      "url_results_total",
			Help:      "Total number of consumed url matching results by status",
		},
		[]string{"status"},
	)

	// ScreenshotProbesTotal tracks screenshot existence probes.
	ScreenshotProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelf_analytics",
			Subsystem: "screenshot",
			Name:      "probes_total",
			Help:      "Total number of screenshot probes by result",
		},
		[]string{"result"},
	)
)
