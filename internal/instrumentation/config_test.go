package instrumentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "outreach", cfg.ServiceName)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, ExporterPrometheus, cfg.MetricsExporter)
	assert.Equal(t, "/metrics", cfg.PrometheusEndpoint)
}

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "outreach-staging")
	t.Setenv("INSTRUMENTATION_ENABLED", "false")
	t.Setenv("METRICS_EXPORTER", "stdout")

	cfg := DefaultConfig()

	assert.Equal(t, "outreach-staging", cfg.ServiceName)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ExporterStdout, cfg.MetricsExporter)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid prometheus",
			cfg:  Config{MetricsExporter: ExporterPrometheus},
		},
		{
			name: "valid otlp with endpoint",
			cfg:  Config{MetricsExporter: ExporterOTLP, OTLPEndpoint: "localhost:4318"},
		},
		{
			name:    "otlp without endpoint",
			cfg:     Config{MetricsExporter: ExporterOTLP},
			wantErr: true,
		},
		{
			name:    "unknown exporter",
			cfg:     Config{MetricsExporter: "graphite"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
