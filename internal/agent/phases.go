package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dvaughn/outreach/internal/llm"
	"github.com/dvaughn/outreach/internal/logging"
)

// State names the steps of the execution phase. Every tool call passes
// through Validating before Composing; Succeeded and Failed are terminal.
type State string

const (
	StatePlanned    State = "planned"
	StateValidating State = "validating"
	StateComposing  State = "composing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// ExecutionResult is the terminal artifact of a run. Exactly one of Status
// and Err is populated.
type ExecutionResult struct {
	Status string
	Err    string
}

// Failed reports whether the run ended in the Failed state.
func (r ExecutionResult) Failed() bool {
	return r.Err != ""
}

// deliberate asks the model for a plan without exposing any tools. The plan
// is appended to the conversation so the execution phase sees it.
func (a *Agent) deliberate(ctx context.Context, conv *Conversation, taskPrompt string, log *slog.Logger) (string, error) {
	log = logging.WithPhase(log, "deliberation")

	conv.AddSystem(deliberationPrompt)
	conv.AddUser(taskPrompt)

	resp, err := a.client.Complete(ctx, llm.Request{Messages: conv.Messages()})
	if err != nil {
		log.ErrorContext(ctx, "deliberation failed", logging.Err(err))
		return "", fmt.Errorf("deliberation failed: %w", err)
	}

	conv.AddAssistant(resp.Message)
	if resp.Message.Content == "" {
		log.WarnContext(ctx, "deliberation produced an empty plan")
	} else {
		log.DebugContext(ctx, "plan produced", slog.Int("plan_length", len(resp.Message.Content)))
	}
	return resp.Message.Content, nil
}

// execute runs the tool loop until the model calls end_execution_loop, a
// tool call fails, or the iteration limit is reached. There are no retries;
// the first failed tool call ends the run.
func (a *Agent) execute(ctx context.Context, conv *Conversation, log *slog.Logger) ExecutionResult {
	log = logging.WithPhase(log, "execution")

	state := StatePlanned
	lastStatus := ""

	for i := 0; i < a.maxIterations; i++ {
		resp, err := a.client.Complete(ctx, llm.Request{
			Messages: conv.Messages(),
			Tools:    ToolDefinitions(),
		})
		if err != nil {
			log.ErrorContext(ctx, "completion failed", logging.Err(err))
			return ExecutionResult{Err: fmt.Sprintf("completion failed: %v", err)}
		}

		conv.AddAssistant(resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			log.WarnContext(ctx, "model responded without a tool call", slog.Int("iteration", i))
			conv.AddSystem(noToolCallWarning)
			continue
		}

		for _, call := range resp.Message.ToolCalls {
			switch call.Name {
			case ToolEndLoop:
				state = StateSucceeded
				log.InfoContext(ctx, "execution loop ended",
					logging.Tool(call.Name),
					logging.Status(string(state)))
				if lastStatus != "" {
					return ExecutionResult{Status: lastStatus}
				}
				return ExecutionResult{Status: endLoopSummary(call.Arguments)}

			case ToolProcessEmail:
				state = StateValidating
				args, err := ValidateProcessEmail(call.Arguments)
				if err != nil {
					state = StateFailed
					a.recordTool(ctx, call.Name, logging.StatusError)
					log.ErrorContext(ctx, "tool call rejected",
						logging.Tool(call.Name), logging.Err(err))
					conv.AddToolResult(call.ID, toolResultJSON("", err))
					return ExecutionResult{Err: err.Error()}
				}

				state = StateComposing
				status, err := a.composer.ComposeAndLabel(ctx, args)
				if err != nil {
					state = StateFailed
					a.recordTool(ctx, call.Name, logging.StatusError)
					log.ErrorContext(ctx, "composition failed",
						logging.Tool(call.Name), logging.Err(err))
					conv.AddToolResult(call.ID, toolResultJSON("", err))
					return ExecutionResult{Err: err.Error()}
				}

				a.recordTool(ctx, call.Name, logging.StatusSuccess)
				lastStatus = status
				conv.AddToolResult(call.ID, toolResultJSON(status, nil))

			default:
				state = StateFailed
				err := fmt.Errorf("unknown tool %q", call.Name)
				log.ErrorContext(ctx, "unknown tool call", logging.Tool(call.Name))
				conv.AddToolResult(call.ID, toolResultJSON("", err))
				return ExecutionResult{Err: err.Error()}
			}
		}
	}

	log.WarnContext(ctx, "iteration limit reached", slog.Int("max_iterations", a.maxIterations))
	if lastStatus != "" {
		return ExecutionResult{Status: lastStatus}
	}
	return ExecutionResult{Err: "execution loop reached the iteration limit without completing the task"}
}

func endLoopSummary(raw json.RawMessage) string {
	var args struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(raw, &args); err == nil && args.Summary != "" {
		return args.Summary
	}
	return "Execution loop ended."
}

// toolResultJSON renders the {status, error} result returned to the model.
// The fields are mutually exclusive.
func toolResultJSON(status string, err error) string {
	result := struct {
		Status *string `json:"status"`
		Error  *string `json:"error"`
	}{}
	if err != nil {
		msg := err.Error()
		result.Error = &msg
	} else {
		result.Status = &status
	}
	encoded, _ := json.Marshal(result)
	return string(encoded)
}
