// Package metrics defines the Prometheus collectors shared across the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth metrics
var (
	// AuthAttemptsTotal tracks register/login attempts by operation and outcome
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total authentication attempts by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// List membership metrics
var (
	// ListMutationsTotal tracks list add/remove operations by list and op
	ListMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_mutations_total",
			Help: "Total list membership mutations by list and operation",
		},
		[]string{"list", "op"},
	)
)

// Upstream API metrics
var (
	// UpstreamRequestsTotal tracks YouTube API calls by endpoint and status
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total upstream video API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamRequestDuration tracks upstream call latency in seconds
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream video API request duration in seconds",
			Buckets: []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)
)
