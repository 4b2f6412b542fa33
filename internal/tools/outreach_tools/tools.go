package outreach_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/dvaughn/outreach/internal/agent"
	"github.com/dvaughn/outreach/internal/server"
)

// RegisterOutreachTools registers the email composition tools with the MCP server
func RegisterOutreachTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	processTool := mcp.NewTool(agent.ToolProcessEmail,
		mcp.WithDescription("Compose an outreach email, save it as a Gmail draft, and label it for later retrieval"),
		mcp.WithArray("to_addrs",
			mcp.Required(),
			mcp.Description("Recipient email addresses. Must not be empty."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Subject line of the email"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body. HTML is the default; plain text is also accepted."),
		),
		mcp.WithString("attachment_path",
			mcp.Description("Path of a single file to attach. Attached before attachment_paths."),
		),
		mcp.WithArray("attachment_paths",
			mcp.Description("Paths of additional files to attach, in order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	s.AddTool(processTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleProcessEmail(ctx, request, sc)
	})

	return nil
}

func handleProcessEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read arguments: %v", err)), nil
	}

	args, err := agent.ValidateProcessEmail(raw)
	if err != nil {
		sc.Metrics().RecordToolInvocation(ctx, agent.ToolProcessEmail, "error")
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, err := sc.Composer().ComposeAndLabel(ctx, args)
	if err != nil {
		sc.Metrics().RecordToolInvocation(ctx, agent.ToolProcessEmail, "error")
		return mcp.NewToolResultError(err.Error()), nil
	}

	sc.Metrics().RecordToolInvocation(ctx, agent.ToolProcessEmail, "success")
	return mcp.NewToolResultText(status), nil
}
