// Package outreach_tools registers the email composition tools with the MCP
// server. The tool arguments are validated against the same schema the agent
// uses before anything reaches the Gmail transport.
package outreach_tools
