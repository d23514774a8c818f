// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Advisory metrics
	ScoresComputed        prometheus.Counter
	AssessmentsEmpty      prometheus.Counter
	SimulationsRun        *prometheus.CounterVec
	RecommendationsServed prometheus.Counter
	RecommendationMatches prometheus.Histogram

	// HTTP metrics
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestErrors   *prometheus.CounterVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Feed metrics
	FeedSubscribers prometheus.Gauge
	FeedEventsSent  prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "investment_panel"
	}

	return &Metrics{
		ScoresComputed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "scores_computed_total",
			Help:      "Total number of risk scores computed",
		}),
		AssessmentsEmpty: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "assessments_empty_total",
			Help:      "Total number of assessments skipped for lack of history",
		}),
		SimulationsRun: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Total number of simulations run by product type",
		}, []string{"product_type"}),
		RecommendationsServed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recommendation",
			Name:      "served_total",
			Help:      "Total number of recommendation requests served",
		}),
		RecommendationMatches: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "recommendation",
			Name:      "matches_per_request",
			Help:      "Number of products matched per recommendation request",
			Buckets:   []float64{0, 1, 2, 5, 10, 20},
		}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		HTTPRequestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_errors_total",
			Help:      "Total number of HTTP requests answered with an error status",
		}, []string{"endpoint"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),

		FeedSubscribers: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "subscribers",
			Help:      "Current number of simulation feed subscribers",
		}),
		FeedEventsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "events_sent_total",
			Help:      "Total number of simulation events broadcast to subscribers",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordScoreComputed increments the scores computed counter.
func RecordScoreComputed() {
	DefaultMetrics.ScoresComputed.Inc()
}

// RecordEmptyAssessment increments the empty assessments counter.
func RecordEmptyAssessment() {
	DefaultMetrics.AssessmentsEmpty.Inc()
}

// RecordSimulationRun increments the simulations counter for a product type.
func RecordSimulationRun(productType string) {
	DefaultMetrics.SimulationsRun.WithLabelValues(productType).Inc()
}

// RecordRecommendation records one served recommendation request and its
// match count.
func RecordRecommendation(matches int) {
	DefaultMetrics.RecommendationsServed.Inc()
	DefaultMetrics.RecommendationMatches.Observe(float64(matches))
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}
