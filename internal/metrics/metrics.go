package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shareit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shareit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shareit_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shareit_booking_decisions_total",
			Help: "Total number of owner decisions by resulting status",
		},
		[]string{"status"},
	)

	CommentGateRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shareit_comment_gate_rejections_total",
			Help: "Total number of comments refused for lack of a completed booking",
		},
	)

	EventPublishFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shareit_event_publish_failures_total",
			Help: "Total number of booking events that could not be published",
		},
		[]string{"type"},
	)
)

func RecordHTTPRequest(method, route, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}

func RecordBookingCreated() {
	BookingsCreatedTotal.Inc()
}

func RecordBookingDecision(status string) {
	BookingDecisionsTotal.WithLabelValues(status).Inc()
}

func RecordCommentRejected() {
	CommentGateRejectionsTotal.Inc()
}

func RecordEventPublishFailure(eventType string) {
	EventPublishFailuresTotal.WithLabelValues(eventType).Inc()
}
