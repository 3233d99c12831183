package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EstimatesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_estimates_total",
			Help: "Total number of price estimates computed",
		},
		[]string{"furniture_type"},
	)

	EstimatesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_estimates_rejected_total",
			Help: "Total number of estimate requests rejected by validation",
		},
		[]string{"reason"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_contact_submissions_total",
			Help: "Total number of contact form submissions by outcome",
		},
		[]string{"outcome"},
	)

	ContactRelayDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "site_contact_relay_duration_seconds",
			Help:    "Duration of the contact form relay call in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	AnalyticsEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_analytics_events_total",
			Help: "Total number of analytics events received",
		},
		[]string{"event"},
	)

	AnalyticsForwardFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "site_analytics_forward_failures_total",
			Help: "Total number of analytics events the collector did not accept",
		},
	)
)
