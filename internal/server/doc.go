// Package server holds the shared state of the MCP serving surface: the
// server context handed to tool handlers and the dedicated Prometheus
// metrics listener.
package server
