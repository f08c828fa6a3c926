package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclass_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclass_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ClassMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclass_class_mutations_total",
			Help: "Total number of class create/update/delete calls by outcome",
		},
		[]string{"operation", "outcome"},
	)

	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclass_reports_total",
			Help: "Total number of date-range reports",
		},
		[]string{"outcome"},
	)

	ReportRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitclass_report_rows",
			Help:    "Rows returned per report",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordClassMutation(operation, outcome string) {
	ClassMutationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordReport counts a report run. rows is ignored unless outcome is
// "success".
func RecordReport(outcome string, rows int) {
	ReportsTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		ReportRows.Observe(float64(rows))
	}
}
