package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ApprovalDecisions counts workflow transitions by action and outcome.
	ApprovalDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "municipal_approval_decisions_total",
		Help: "Approval workflow operations by action and outcome",
	}, []string{"action", "outcome"})

	// NotificationsSent counts email dispatch attempts by template and outcome.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "municipal_approval_notifications_total",
		Help: "Email notifications by template and outcome",
	}, []string{"template", "outcome"})

	// HTTPRequestDuration records handler latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "municipal_approval_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Outcome labels shared by the counters.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
	OutcomeSkipped  = "skipped"
)
