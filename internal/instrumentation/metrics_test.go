package instrumentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *metric.ManualReader) {
	t.Helper()
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func collectMetricNames(t *testing.T, reader *metric.ManualReader) map[string]bool {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	names := map[string]bool{}
	for _, scope := range rm.ScopeMetrics {
		for _, md := range scope.Metrics {
			names[md.Name] = true
		}
	}
	return names
}

func TestRecordRun(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordRun(t.Context(), StatusSuccess, 2*time.Second)
	m.RecordRun(t.Context(), StatusError, 500*time.Millisecond)

	names := collectMetricNames(t, reader)
	assert.True(t, names["outreach_runs_total"])
	assert.True(t, names["outreach_run_duration_seconds"])
}

func TestRecordToolInvocation(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordToolInvocation(t.Context(), "process_email_and_label", StatusSuccess)

	names := collectMetricNames(t, reader)
	assert.True(t, names["tool_invocations_total"])
}

func TestRecordGmailOperation(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordGmailOperation(t.Context(), "create_draft", StatusSuccess, 120*time.Millisecond)

	names := collectMetricNames(t, reader)
	assert.True(t, names["gmail_operations_total"])
	assert.True(t, names["gmail_operation_duration_seconds"])
}

func TestZeroValueMetricsIsNoOp(t *testing.T) {
	var m Metrics

	// must not panic when instrumentation was never initialized
	m.RecordRun(t.Context(), StatusSuccess, time.Second)
	m.RecordToolInvocation(t.Context(), "process_email_and_label", StatusSuccess)
	m.RecordGmailOperation(t.Context(), "create_draft", StatusSuccess, time.Second)
}
