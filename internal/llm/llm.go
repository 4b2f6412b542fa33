package llm

import (
	"context"
	"encoding/json"
)

// Conversation roles understood by chat-completion backends.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single conversational turn exchanged with a model.
type Message struct {
	Role    string
	Content string

	// ToolCalls is populated on assistant messages when the model decided
	// to invoke tools.
	ToolCalls []ToolCall

	// ToolCallID links a RoleTool message back to the call it answers.
	ToolCallID string
}

// ToolCall captures a tool invocation emitted by an assistant message.
// Arguments is the raw JSON object produced by the model; validation
// happens downstream against the declared tool schema.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// Tool declares a callable tool offered to the model.
// Parameters holds the JSON schema of the tool's arguments.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// Request describes one completion call.
// An empty Tools slice means the model must answer with plain text.
type Request struct {
	Messages []Message
	Tools    []Tool
}

// Response is the model's answer to a Request.
type Response struct {
	Message Message
}

// Client defines the unified interface for calling a language model.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
