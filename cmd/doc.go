// Package cmd implements the command-line interface for outreach.
//
// This package provides the following commands:
//   - auth: Authorize access to the Gmail account and cache the token
//   - run: Run the outreach agent for a single task prompt
//   - process: Process a slice of recipient files through the agent
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
package cmd
