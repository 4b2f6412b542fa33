package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrStatus    = "status"
	attrOperation = "operation"
	attrTool      = "tool"
)

// Metrics provides methods for recording observability metrics.
// The zero value is a no-op recorder.
type Metrics struct {
	// Agent run metrics
	runsTotal   metric.Int64Counter
	runDuration metric.Float64Histogram

	// Tool invocation metrics
	toolInvocationsTotal metric.Int64Counter

	// Gmail API metrics
	gmailOperationsTotal   metric.Int64Counter
	gmailOperationDuration metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.runsTotal, err = meter.Int64Counter(
		"outreach_runs_total",
		metric.WithDescription("Total number of agent runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create outreach_runs_total counter: %w", err)
	}

	m.runDuration, err = meter.Float64Histogram(
		"outreach_run_duration_seconds",
		metric.WithDescription("Agent run duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0, 120.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create outreach_run_duration_seconds histogram: %w", err)
	}

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total number of agent tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool_invocations_total counter: %w", err)
	}

	m.gmailOperationsTotal, err = meter.Int64Counter(
		"gmail_operations_total",
		metric.WithDescription("Total number of Gmail API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail_operations_total counter: %w", err)
	}

	m.gmailOperationDuration, err = meter.Float64Histogram(
		"gmail_operation_duration_seconds",
		metric.WithDescription("Gmail API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail_operation_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordRun records a completed agent run with its terminal status and duration.
// Status should be one of "success" or "error".
func (m *Metrics) RecordRun(ctx context.Context, status string, elapsed time.Duration) {
	if m.runsTotal == nil || m.runDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrStatus, status),
	}

	m.runsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.runDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
}

// RecordToolInvocation records an agent tool invocation with tool name and status.
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool, status string) {
	if m.toolInvocationsTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, tool),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordGmailOperation records a Gmail API operation with its status and duration.
//
// Parameters:
//   - operation: Operation type (create_draft, send_message, get_or_create_label, apply_label)
//   - status: Result status ("success" or "error")
//   - elapsed: Time taken for the operation
func (m *Metrics) RecordGmailOperation(ctx context.Context, operation, status string, elapsed time.Duration) {
	if m.gmailOperationsTotal == nil || m.gmailOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.gmailOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.gmailOperationDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
}
