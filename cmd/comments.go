package cmd

import (
	"fmt"

	rendercomments "github.com/aadarshkt/comment-copilot/internal/adapters/render/comments"
	"github.com/spf13/cobra"
)

func newCommentsCmd(app *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "List comments for a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, app); err != nil {
				return err
			}

			resolved, err := app.vocab.Resolve(category)
			if err != nil {
				return err
			}

			comments, err := app.cache.Fetch(cmd.Context(), resolved)
			if err != nil {
				return fmt.Errorf("load comments: %w", err)
			}

			output, err := rendercomments.Render(comments, rendercomments.RenderOptions{
				Category:   resolved,
				Vocabulary: app.vocab,
			})
			if err != nil {
				return fmt.Errorf("render comments: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Workflow category (default: the profile's default category)")

	return cmd
}
