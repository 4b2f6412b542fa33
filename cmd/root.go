package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debugMode bool

// rootCmd represents the base command for the outreach application
var rootCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Composes and labels personalized outreach email drafts",
	Long: `outreach drives a two-phase agent that writes personalized outreach
emails and saves them as labeled Gmail drafts for later review and sending.

It can run as:
  - A one-shot agent for a single task prompt (run)
  - A batch processor over a directory of recipient files (process)
  - An MCP (Model Context Protocol) server for AI assistants (serve)`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "outreach version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newProcessCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
