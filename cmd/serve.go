package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/dvaughn/outreach/internal/server"
	"github.com/dvaughn/outreach/internal/tools/outreach_tools"
)

func newServeCmd() *cobra.Command {
	var (
		label          string
		sendMode       bool
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server over stdio, exposing the
email composition tool to AI assistants.

The process_email_and_label tool validates its arguments, saves the email
as a labeled Gmail draft, and returns a status message. Prometheus metrics
are served on a dedicated port unless disabled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			provider, err := newInstrumentation(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = provider.Shutdown(context.Background()) }()

			composer, err := newComposer(ctx, label, sendMode, provider.Metrics())
			if err != nil {
				return err
			}

			serverContext := server.NewServerContext(ctx, composer, provider.Metrics())
			defer func() { _ = serverContext.Shutdown() }()

			var metricsServer *server.MetricsServer
			if metricsEnabled && provider.Enabled() && provider.PrometheusHandler() != nil {
				metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
					Addr:                    metricsAddr,
					InstrumentationProvider: provider,
				})
				if err != nil {
					return err
				}
				go func() {
					if err := metricsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						slog.Error("metrics server stopped", "error", err)
					}
				}()
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					_ = metricsServer.Shutdown(shutdownCtx)
				}()
			}

			mcpSrv := mcpserver.NewMCPServer("outreach", version,
				mcpserver.WithToolCapabilities(true),
			)

			if err := outreach_tools.RegisterOutreachTools(mcpSrv, serverContext); err != nil {
				return fmt.Errorf("failed to register outreach tools: %w", err)
			}

			if err := mcpserver.ServeStdio(mcpSrv); err != nil {
				return fmt.Errorf("server stopped with error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Gmail label applied to composed drafts (default: derived from subject and date)")
	cmd.Flags().BoolVar(&sendMode, "send", false, "Send emails immediately instead of saving drafts")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Serve Prometheus metrics on a dedicated port")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Address for the Prometheus metrics endpoint")

	return cmd
}
