package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/classes", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/classes", "200"))
	assert.Equal(t, float64(1), count)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/classes", "201", 0.1)
	RecordHTTPRequest("POST", "/classes", "201", 0.2)
	RecordHTTPRequest("POST", "/classes", "409", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/classes", "201"))
	conflictCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/classes", "409"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), conflictCount)
}

func TestRecordClassMutation(t *testing.T) {
	ClassMutationsTotal.Reset()

	RecordClassMutation("create", "success")
	RecordClassMutation("create", "constraint_violation")
	RecordClassMutation("delete", "not_found")
	RecordClassMutation("delete", "not_found")

	assert.Equal(t, float64(1), testutil.ToFloat64(ClassMutationsTotal.WithLabelValues("create", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ClassMutationsTotal.WithLabelValues("create", "constraint_violation")))
	assert.Equal(t, float64(2), testutil.ToFloat64(ClassMutationsTotal.WithLabelValues("delete", "not_found")))
}

func TestRecordReport(t *testing.T) {
	ReportsTotal.Reset()

	RecordReport("success", 3)
	RecordReport("validation_error", 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(ReportsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ReportsTotal.WithLabelValues("validation_error")))

	expected := `
# HELP fitclass_reports_total Total number of date-range reports
# TYPE fitclass_reports_total counter
fitclass_reports_total{outcome="success"} 1
fitclass_reports_total{outcome="validation_error"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(ReportsTotal, strings.NewReader(expected), "fitclass_reports_total"))
}
