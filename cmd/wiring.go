package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dvaughn/outreach/internal/agent"
	"github.com/dvaughn/outreach/internal/gmail"
	"github.com/dvaughn/outreach/internal/instrumentation"
	"github.com/dvaughn/outreach/internal/llm/openai"
)

// newInstrumentation builds the metrics provider from the environment.
func newInstrumentation(ctx context.Context) (*instrumentation.Provider, error) {
	cfg := instrumentation.DefaultConfig()
	cfg.ServiceVersion = version
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return instrumentation.NewProvider(ctx, cfg)
}

// newComposer wires the Gmail client, metric instrumentation, and label
// policy into a draft composer.
func newComposer(ctx context.Context, label string, sendMode bool, metrics *instrumentation.Metrics) (*agent.Composer, error) {
	client, err := gmail.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("run 'outreach auth' first: %w", err)
	}

	opts := []agent.ComposerOption{
		agent.WithSendMode(sendMode),
	}
	if label != "" {
		opts = append(opts, agent.WithBaseLabel(label))
	}

	transport := gmail.NewInstrumentedService(client, metrics)
	return agent.NewComposer(transport, opts...), nil
}

// newAgent wires the OpenAI client and the composer into the outreach agent.
func newAgent(composer *agent.Composer, model string, maxIterations int, metrics agent.MetricsRecorder) (*agent.Agent, error) {
	client, err := openai.NewClient(openai.Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   model,
	})
	if err != nil {
		return nil, err
	}

	return agent.New(client, composer,
		agent.WithMetrics(metrics),
		agent.WithMaxIterations(maxIterations),
	), nil
}
