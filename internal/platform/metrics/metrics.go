package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "kamp",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kamp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kamp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	applicationsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kamp",
			Subsystem: "applications",
			Name:      "submitted_total",
			Help:      "Applications submitted, by applicant type and outcome.",
		},
		[]string{"applicant_type", "outcome"},
	)

	applicationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kamp",
			Subsystem: "applications",
			Name:      "status_transitions_total",
			Help:      "Application status transitions applied by reviewers.",
		},
		[]string{"from", "to"},
	)

	projectModerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kamp",
			Subsystem: "projects",
			Name:      "moderations_total",
			Help:      "Project approval status changes.",
		},
		[]string{"status"},
	)

	donationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kamp",
			Subsystem: "donations",
			Name:      "recorded_total",
			Help:      "Donations recorded.",
		},
	)

	donationAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kamp",
			Subsystem: "donations",
			Name:      "amount",
			Help:      "Distribution of donation amounts.",
			Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
		},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kamp",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by method and result.",
		},
		[]string{"method", "success"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		applicationsSubmitted,
		applicationTransitions,
		projectModerations,
		donationsTotal,
		donationAmount,
		logins,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request in flight and returns the function that completes it.
func RequestStarted() func(method, route string, status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(method, route string, status int) {
		httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		method = strings.ToUpper(method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordApplicationSubmitted counts a submission; outcome is "created" or "duplicate".
func RecordApplicationSubmitted(applicantType, outcome string) {
	applicationsSubmitted.WithLabelValues(applicantType, outcome).Inc()
}

// RecordApplicationTransition counts an applied status change.
func RecordApplicationTransition(from, to string) {
	applicationTransitions.WithLabelValues(from, to).Inc()
}

// RecordProjectModeration counts an approval status change.
func RecordProjectModeration(status string) {
	projectModerations.WithLabelValues(status).Inc()
}

// RecordDonation counts a donation and observes its amount.
func RecordDonation(amount float64) {
	donationsTotal.Inc()
	donationAmount.Observe(amount)
}

// RecordLogin counts a login attempt.
func RecordLogin(method string, success bool) {
	logins.WithLabelValues(method, strconv.FormatBool(success)).Inc()
}
