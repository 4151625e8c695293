package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/spf13/cobra"
)

func newReplyCmd(app *app) *cobra.Command {
	var text string
	var category string

	cmd := &cobra.Command{
		Use:   "reply <comment-id>",
		Short: "Send a reply to a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd, app); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid comment id %q", args[0])
			}

			resolved, err := app.vocab.Resolve(category)
			if err != nil {
				return err
			}

			if text == "" {
				text, err = readLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Reply: ")
				if err != nil {
					return err
				}
			}

			app.replies.Open(domain.CommentID(id))
			if _, err := app.replies.Edit(text); err != nil {
				return err
			}

			if !app.replies.Draft().CanSend() {
				// Same rule as the interactive view: empty text sends nothing.
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to send.")
				return nil
			}

			sendErr := runSpinner(cmd.Context(), cmd.OutOrStdout(), "Sending reply...", func(ctx context.Context) error {
				return app.replies.Send(ctx, resolved)
			})

			if n := app.notifier.Current(); n != nil {
				fmt.Fprintln(cmd.OutOrStdout(), n.Message)
			}
			if sendErr != nil {
				return fmt.Errorf("reply: %w", domainRoot(sendErr))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Reply text (prompts when omitted)")
	cmd.Flags().StringVar(&category, "category", "", "Category whose cache entry the reply invalidates")

	return cmd
}
