package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		label         string
		sendMode      bool
		model         string
		maxIterations int
	)

	cmd := &cobra.Command{
		Use:   "run [task prompt]",
		Short: "Run the outreach agent for a single task prompt",
		Long: `Run one deliberate-then-act agent cycle for the given task prompt.

The agent first plans the email, then composes it through the Gmail draft
tool. The resulting draft is labeled so it can be found and sent later.
Pass --send to deliver immediately instead of saving a draft.

Requires OPENAI_API_KEY and a cached Gmail token (see 'outreach auth').`,
		Args: cobra.MinimumNArgs(1),
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

			result := a.Run(ctx, strings.Join(args, " "))
			if result.Failed() {
				return fmt.Errorf("%s", result.Err)
			}

			fmt.Println(result.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Gmail label applied to composed drafts (default: derived from subject and date)")
	cmd.Flags().BoolVar(&sendMode, "send", false, "Send the email immediately instead of saving a draft")
	cmd.Flags().StringVar(&model, "model", "", "Model name for the completion service (default: gpt-4o-mini)")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 10, "Maximum tool loop iterations per run")

	return cmd
}
