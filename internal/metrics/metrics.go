// Package metrics exposes prometheus instrumentation for the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Comparisons counts loan comparison requests by outcome.
	Comparisons = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realkredit_comparisons_total",
			Help: "Number of loan comparison requests served, by status.",
		},
		[]string{"status"},
	)

	// RequestDuration observes how long comparison requests take.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "realkredit_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by endpoint.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
