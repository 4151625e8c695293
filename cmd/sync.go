package cmd

import (
	"errors"
	"fmt"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull the latest comments from the platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, app); err != nil {
				return err
			}

			syncErr := runSpinner(cmd.Context(), cmd.OutOrStdout(), "Syncing channel...", app.syncer.Sync)

			if n := app.notifier.Current(); n != nil {
				fmt.Fprintln(cmd.OutOrStdout(), n.Message)
			}
			if syncErr != nil {
				return fmt.Errorf("sync: %w", domainRoot(syncErr))
			}
			return nil
		},
	}
}

// domainRoot unwraps to the sentinel when one is present so the operator
// sees "not authenticated" instead of a wrapped chain.
func domainRoot(err error) error {
	for _, sentinel := range []error{domain.ErrUnauthenticated, domain.ErrNoChannel, domain.ErrCommentNotFound} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}
