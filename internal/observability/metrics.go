package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API client metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Backend API request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation", "path", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of backend API request attempts",
		},
		[]string{"operation", "path", "status"},
	)

	APIFallbackDepth = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_fallback_depth",
			Help:    "Number of candidate endpoints attempted before a call resolved",
			Buckets: []float64{1, 2, 3, 4},
		},
		[]string{"operation"},
	)

	APICallFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_call_failures_total",
			Help: "Total number of API calls that failed after exhausting all candidates",
		},
		[]string{"operation", "reason"},
	)

	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total number of 401 responses that forced a session clear",
		},
	)

	// Session store metrics
	SessionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "result"},
	)

	SessionsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_expired_total",
			Help: "Total number of sessions cleared on read due to expiry",
		},
	)

	// Demo mode metrics
	DemoModeActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_mode_activations_total",
			Help: "Total number of calls served from the demo catalog after backend failure",
		},
		[]string{"operation"},
	)

	// Demo server metrics
	DemoServerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "demo_server_request_duration_seconds",
			Help:    "Demo backend HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"method", "path", "status"},
	)

	DemoServerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_server_requests_total",
			Help: "Total number of demo backend HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)
