package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvaughn/outreach/internal/outreach"
)

func newProcessCmd() *cobra.Command {
	var (
		recipientsDir string
		beginIndex    int
		endIndex      int
		stopHour      int
		label         string
		sendMode      bool
		model         string
		maxIterations int
		promptFile    string
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process a slice of recipient files through the outreach agent",
		Long: `Process recipients stored as customer_<index>.json files in a directory.

The slice [--begin, --end) selects which indices to handle; missing files
and recipients already marked as contacted are skipped. Each recipient's
JSON record is substituted into the prompt template before the agent runs.

In send mode, successfully contacted recipients are marked in their file so
a later run does not email them twice.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			provider, err := newInstrumentation(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = provider.Shutdown(ctx) }()

			composer, err := newComposer(ctx, label, sendMode, provider.Metrics())
			if err != nil {
				return err
			}

			a, err := newAgent(composer, model, maxIterations, provider.Metrics())
			if err != nil {
				return err
			}

			template := ""
			if promptFile != "" {
				data, err := os.ReadFile(promptFile)
				if err != nil {
					return fmt.Errorf("failed to read prompt template: %w", err)
				}
				template = string(data)
			}

			processor, err := outreach.NewProcessor(a, outreach.Config{
				RecipientsDir:  recipientsDir,
				BeginIndex:     beginIndex,
				EndIndex:       endIndex,
				StopHour:       stopHour,
				SendMode:       sendMode,
				PromptTemplate: template,
			})
			if err != nil {
				return err
			}

			summary, err := processor.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Processed %d, skipped %d, failed %d\n",
				summary.Processed, summary.Skipped, summary.Failed)
			if summary.Failed > 0 {
				return fmt.Errorf("%d recipients failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recipientsDir, "recipients-dir", "", "Directory of customer_<index>.json recipient files (required)")
	cmd.Flags().IntVar(&beginIndex, "begin", 0, "First recipient index to process (inclusive)")
	cmd.Flags().IntVar(&endIndex, "end", 0, "Last recipient index to process (exclusive)")
	cmd.Flags().IntVar(&stopHour, "stop-hour", 0, "Stop processing once the local hour reaches this value (0 disables)")
	cmd.Flags().StringVar(&label, "label", "", "Gmail label applied to composed drafts")
	cmd.Flags().BoolVar(&sendMode, "send", false, "Send emails immediately and mark recipients as contacted")
	cmd.Flags().StringVar(&model, "model", "", "Model name for the completion service (default: gpt-4o-mini)")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 10, "Maximum tool loop iterations per run")
	cmd.Flags().StringVar(&promptFile, "prompt-file", "", "Path to a prompt template file (default: built-in template)")

	_ = cmd.MarkFlagRequired("recipients-dir")

	return cmd
}
