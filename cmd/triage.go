package cmd

import (
	"fmt"

	"github.com/aadarshkt/comment-copilot/internal/adapters/render/triage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTriageCmd(app *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Open the interactive triage view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, app); err != nil {
				return err
			}

			resolved, err := app.vocab.Resolve(category)
			if err != nil {
				return err
			}

			model := triage.New(cmd.Context(), triage.Deps{
				Cache:      app.cache,
				Syncer:     app.syncer,
				Replies:    app.replies,
				Notifier:   app.notifier,
				Vocabulary: app.vocab,
				Clock:      app.clock,
				Category:   resolved,
			})

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run triage view: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category to open first (default: the profile's default category)")

	return cmd
}
