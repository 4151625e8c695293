package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "commco",
		Short:         "commco: triage your channel's comments from the terminal",
		Long:          "commco is a client for the comment-copilot backend. It lists categorized channel comments, pulls fresh ones from the platform on demand, and sends inline replies, either one-shot or in an interactive triage view.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newCommentsCmd(app),
		newSyncCmd(app),
		newReplyCmd(app),
		newTriageCmd(app),
	)

	return rootCmd
}
