package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts register/login attempts by result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total authentication requests by action and result",
		},
		[]string{"action", "result"}, // result: success | failure | forbidden
	)

	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication duration by action",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"action"},
	)

	// tokenRejections counts requests refused by Authz.
	tokenRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_rejections_total",
			Help: "Requests rejected for a missing or invalid bearer token",
		},
		[]string{"reason"}, // missing | invalid
	)

	forbiddenAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forbidden_attempts_total",
			Help: "Forbidden access attempts by role and method",
		},
		[]string{"role", "method"},
	)
)

// RecordAuthRequest records an authentication request.
func RecordAuthRequest(action, result string) {
	authRequestsTotal.WithLabelValues(action, result).Inc()
}

// RecordAuthDuration records authentication duration.
func RecordAuthDuration(action string, durationSeconds float64) {
	authDuration.WithLabelValues(action).Observe(durationSeconds)
}

// RecordTokenRejection records a request refused by Authz.
func RecordTokenRejection(reason string) {
	tokenRejections.WithLabelValues(reason).Inc()
}

// RecordForbiddenAttempt records a forbidden access attempt.
func RecordForbiddenAttempt(role, method string) {
	forbiddenAttempts.WithLabelValues(role, method).Inc()
}
