package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dvaughn/outreach/internal/google"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to the Gmail account",
		Long: `Authorize the tool to manage drafts and labels in your Gmail account.

Prints an authorization URL, then waits for the verification code shown
after granting access. The resulting token is cached locally, so this only
needs to run once per machine.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET to be set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasToken() {
				fmt.Println("Already authorized. Delete the cached token to re-authorize.")
				return nil
			}

			url, err := google.GetAuthURL()
			if err != nil {
				return err
			}

			fmt.Printf("Open the following URL in your browser:\n\n%s\n\nEnter the verification code: ", url)

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read verification code: %w", err)
			}

			if err := google.SaveToken(cmd.Context(), strings.TrimSpace(code)); err != nil {
				return err
			}

			fmt.Println("Authorization complete.")
			return nil
		},
	}
}
