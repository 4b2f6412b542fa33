package agent

import "github.com/dvaughn/outreach/internal/llm"

// Conversation accumulates the message history of a single run. A fresh
// Conversation is created per run; state never crosses run boundaries.
type Conversation struct {
	messages []llm.Message
}

func NewConversation() *Conversation {
	return &Conversation{}
}

func (c *Conversation) AddSystem(content string) {
	c.messages = append(c.messages, llm.Message{Role: llm.RoleSystem, Content: content})
}

func (c *Conversation) AddUser(content string) {
	c.messages = append(c.messages, llm.Message{Role: llm.RoleUser, Content: content})
}

func (c *Conversation) AddAssistant(msg llm.Message) {
	msg.Role = llm.RoleAssistant
	c.messages = append(c.messages, msg)
}

// AddToolResult appends the JSON result of a tool call, linked back to the
// call by its ID.
func (c *Conversation) AddToolResult(callID, content string) {
	c.messages = append(c.messages, llm.Message{
		Role:       llm.RoleTool,
		Content:    content,
		ToolCallID: callID,
	})
}

// Messages returns a copy of the history for a completion request.
func (c *Conversation) Messages() []llm.Message {
	out := make([]llm.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}
