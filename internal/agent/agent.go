package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dvaughn/outreach/internal/llm"
	"github.com/dvaughn/outreach/internal/logging"
)

const defaultMaxIterations = 10

// MetricsRecorder receives run and tool outcomes. A nil recorder disables
// instrumentation.
type MetricsRecorder interface {
	RecordRun(ctx context.Context, status string, elapsed time.Duration)
	RecordToolInvocation(ctx context.Context, tool, status string)
}

// Agent sequences a deliberation phase and an execution phase over a single
// conversation. Each Run owns its conversation exclusively.
type Agent struct {
	client        llm.Client
	composer      *Composer
	logger        *slog.Logger
	metrics       MetricsRecorder
	maxIterations int
	persona       string
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the agent's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) { a.logger = logger }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(a *Agent) { a.metrics = m }
}

// WithMaxIterations bounds the execution loop.
func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxIterations = n
		}
	}
}

// WithPersona replaces the default persona system prompt.
func WithPersona(persona string) Option {
	return func(a *Agent) { a.persona = persona }
}

func New(client llm.Client, composer *Composer, opts ...Option) *Agent {
	a := &Agent{
		client:        client,
		composer:      composer,
		logger:        slog.Default(),
		maxIterations: defaultMaxIterations,
		persona:       personaPrompt,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes one deliberate-then-act cycle for the task prompt and returns
// the terminal result. Exactly one of Status and Err is set.
func (a *Agent) Run(ctx context.Context, taskPrompt string) ExecutionResult {
	runID := uuid.NewString()
	start := time.Now()
	log := logging.WithRunID(a.logger, runID)

	log.InfoContext(ctx, "run started")

	conv := NewConversation()
	conv.AddSystem(a.persona)

	if _, err := a.deliberate(ctx, conv, taskPrompt, log); err != nil {
		result := ExecutionResult{Err: err.Error()}
		a.finish(ctx, log, result, start)
		return result
	}

	conv.AddSystem(executionPrompt)

	result := a.execute(ctx, conv, log)
	a.finish(ctx, log, result, start)
	return result
}

func (a *Agent) finish(ctx context.Context, log *slog.Logger, result ExecutionResult, start time.Time) {
	elapsed := time.Since(start)
	status := logging.StatusSuccess
	if result.Failed() {
		status = logging.StatusError
	}
	if a.metrics != nil {
		a.metrics.RecordRun(ctx, status, elapsed)
	}
	log.InfoContext(ctx, "run finished",
		logging.Status(status),
		slog.Duration(logging.KeyDuration, elapsed))
}

func (a *Agent) recordTool(ctx context.Context, tool, status string) {
	if a.metrics != nil {
		a.metrics.RecordToolInvocation(ctx, tool, status)
	}
}
