package outreach

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dvaughn/outreach/internal/agent"
	"github.com/dvaughn/outreach/internal/logging"
)

// RecipientPlaceholder marks where a recipient's JSON record is substituted
// into the prompt template.
const RecipientPlaceholder = "{{recipient_json}}"

// Runner executes one agent run per recipient. Implemented by agent.Agent.
type Runner interface {
	Run(ctx context.Context, taskPrompt string) agent.ExecutionResult
}

// Config controls which slice of the recipient directory is processed.
// Recipient records live in RecipientsDir as customer_<index>.json files;
// the slice [BeginIndex, EndIndex) selects indices, and missing files are
// skipped. Each file is read and written independently, so concurrent
// processors working disjoint slices need no locking.
type Config struct {
	RecipientsDir  string
	BeginIndex     int
	EndIndex       int
	StopHour       int
	SendMode       bool
	PromptTemplate string
}

// Summary counts the outcome of a processing run.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Processor walks a slice of recipient files and runs the outreach agent for
// each one that has not been contacted yet.
type Processor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
	now    func() time.Time
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithProcessorLogger sets the processor's logger.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) { p.logger = logger }
}

// WithProcessorClock substitutes the time source used for the stop hour.
func WithProcessorClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) { p.now = now }
}

func NewProcessor(runner Runner, cfg Config, opts ...ProcessorOption) (*Processor, error) {
	if cfg.RecipientsDir == "" {
		return nil, fmt.Errorf("recipients directory is required")
	}
	if cfg.EndIndex < cfg.BeginIndex {
		return nil, fmt.Errorf("end index %d precedes begin index %d", cfg.EndIndex, cfg.BeginIndex)
	}
	if cfg.PromptTemplate == "" {
		cfg.PromptTemplate = DefaultPromptTemplate
	}

	p := &Processor{
		cfg:    cfg,
		runner: runner,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run processes the configured slice and returns outcome counts. A failed
// recipient does not stop the slice; the error return is reserved for
// context cancellation.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	log := logging.WithOperation(p.logger, "process_slice")
	log.InfoContext(ctx, "outreach slice started",
		slog.Int("begin_index", p.cfg.BeginIndex),
		slog.Int("end_index", p.cfg.EndIndex))

	var summary Summary
	for i := p.cfg.BeginIndex; i < p.cfg.EndIndex; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if p.cfg.StopHour > 0 && p.now().Hour() >= p.cfg.StopHour {
			log.InfoContext(ctx, "stop hour reached", slog.Int("stop_hour", p.cfg.StopHour))
			break
		}

		switch p.processOne(ctx, log, i) {
		case outcomeProcessed:
			summary.Processed++
		case outcomeSkipped:
			summary.Skipped++
		case outcomeFailed:
			summary.Failed++
		}
	}

	log.InfoContext(ctx, "outreach slice finished",
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed))
	return summary, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeProcessed
	outcomeFailed
)

func (p *Processor) processOne(ctx context.Context, log *slog.Logger, index int) outcome {
	path := filepath.Join(p.cfg.RecipientsDir, fmt.Sprintf("customer_%d.json", index))
	log = log.With(slog.Int("index", index))

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.InfoContext(ctx, "no recipient file, skipping")
		return outcomeSkipped
	}
	if err != nil {
		log.ErrorContext(ctx, "failed to read recipient file", logging.Err(err))
		return outcomeFailed
	}

	var recipient map[string]any
	if err := json.Unmarshal(data, &recipient); err != nil {
		log.ErrorContext(ctx, "failed to parse recipient file", logging.Err(err))
		return outcomeFailed
	}

	if sent, ok := recipient["email_sent"].(bool); ok && sent {
		log.InfoContext(ctx, "recipient already contacted, skipping")
		return outcomeSkipped
	}

	if email, ok := recipient["email"].(string); ok {
		log = log.With(logging.RecipientHash(email), logging.Domain(email))
	}

	prompt, err := personalize(p.cfg.PromptTemplate, recipient)
	if err != nil {
		log.ErrorContext(ctx, "failed to build prompt", logging.Err(err))
		return outcomeFailed
	}

	result := p.runner.Run(ctx, prompt)
	if result.Failed() {
		log.ErrorContext(ctx, "outreach run failed", slog.String(logging.KeyError, result.Err))
		return outcomeFailed
	}
	log.InfoContext(ctx, "outreach run succeeded", logging.Status(logging.StatusSuccess))

	if p.cfg.SendMode {
		if err := p.markSent(path, recipient); err != nil {
			log.ErrorContext(ctx, "failed to record email_sent", logging.Err(err))
		}
	}
	return outcomeProcessed
}

// personalize substitutes the recipient's JSON record into the template.
func personalize(template string, recipient map[string]any) (string, error) {
	encoded, err := json.Marshal(recipient)
	if err != nil {
		return "", fmt.Errorf("failed to serialize recipient: %w", err)
	}
	return strings.ReplaceAll(template, RecipientPlaceholder, string(encoded)), nil
}

// markSent rewrites the recipient file with email_sent set so a later run
// does not contact the same person twice.
func (p *Processor) markSent(path string, recipient map[string]any) error {
	recipient["email_sent"] = true
	encoded, err := json.MarshalIndent(recipient, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o600)
}
