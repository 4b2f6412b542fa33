// Package instrumentation provides OpenTelemetry metrics for the outreach
// agent.
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Agent Run Metrics:
//   - outreach_runs_total: Counter of agent runs by terminal status
//   - outreach_run_duration_seconds: Histogram of agent run durations
//
// Tool Invocation Metrics:
//   - tool_invocations_total: Counter of agent tool invocations by tool name and status
//
// Gmail API Metrics:
//   - gmail_operations_total: Counter of Gmail API operations by operation and status
//   - gmail_operation_duration_seconds: Histogram of Gmail API operation durations
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for metrics
//   - OTEL_SERVICE_NAME: Service name (default: outreach)
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "outreach",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	recorder := provider.Metrics()
//
//	// Record an agent run
//	recorder.RecordRun(ctx, "success", time.Since(start))
//
//	// Record a Gmail API operation
//	recorder.RecordGmailOperation(ctx, "create_draft", "success", time.Since(start))
package instrumentation
