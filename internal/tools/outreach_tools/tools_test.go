package outreach_tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvaughn/outreach/internal/agent"
	"github.com/dvaughn/outreach/internal/gmail"
	"github.com/dvaughn/outreach/internal/server"
)

type stubTransport struct {
	created int
}

func (s *stubTransport) CreateDraft(context.Context, *gmail.DraftMessage) (*gmail.DraftInfo, error) {
	s.created++
	return &gmail.DraftInfo{DraftID: "d1", MessageID: "m1"}, nil
}

func (s *stubTransport) SendMessage(context.Context, *gmail.DraftMessage) (string, error) {
	return "m1", nil
}

func (s *stubTransport) GetOrCreateLabel(context.Context, string) (string, error) {
	return "l1", nil
}

func (s *stubTransport) ApplyLabel(context.Context, string, string) error {
	return nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = agent.ToolProcessEmail
	req.Params.Arguments = args
	return req
}

func TestHandleProcessEmail(t *testing.T) {
	transport := &stubTransport{}
	composer := agent.NewComposer(transport, agent.WithBaseLabel("Outreach"))
	sc := server.NewServerContext(t.Context(), composer, nil)

	result, err := handleProcessEmail(t.Context(), callRequest(map[string]any{
		"to_addrs": []any{"x@y.com"},
		"subject":  "Hi",
		"body":     "<p>Hi</p>",
	}), sc)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.Equal(t, 1, transport.created)
}

func TestHandleProcessEmailRejectsInvalidArgs(t *testing.T) {
	transport := &stubTransport{}
	composer := agent.NewComposer(transport)
	sc := server.NewServerContext(t.Context(), composer, nil)

	// missing required body
	result, err := handleProcessEmail(t.Context(), callRequest(map[string]any{
		"to_addrs": []any{"x@y.com"},
		"subject":  "Hi",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, 0, transport.created)

	// unknown property
	result, err = handleProcessEmail(t.Context(), callRequest(map[string]any{
		"to_addrs": []any{"x@y.com"},
		"subject":  "Hi",
		"body":     "b",
		"cc":       "z@y.com",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, 0, transport.created)
}
