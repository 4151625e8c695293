package cmd

import (
	"errors"
	"fmt"

	apiadapter "github.com/aadarshkt/comment-copilot/internal/adapters/api"
	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the backend session",
	}

	cmd.AddCommand(newAuthLoginCmd(app), newAuthLogoutCmd(app), newAuthStatusCmd(app))

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var cookie string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in via the backend's browser flow",
		Long:  "Opens no browser itself: the backend owns the OAuth flow. Visit the printed URL, complete the login, then paste the issued session cookie value here.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if cookie == "" {
				fmt.Fprintf(out, "Open this URL in your browser and log in:\n\n  %s\n\n", app.client.LoginURL())
				value, err := readLine(cmd.InOrStdin(), out, "Paste the session cookie value: ")
				if err != nil {
					return err
				}
				cookie = value
			}
			if cookie == "" {
				return errors.New("no session cookie provided")
			}

			if err := app.creds.Put(cmd.Context(), apiadapter.CredentialKey, cookie); err != nil {
				return fmt.Errorf("store session cookie: %w", err)
			}

			session, _ := app.gate.Resolve(cmd.Context())
			if !session.IsAuthenticated() {
				// Keep nothing that the backend rejected.
				_ = app.creds.Delete(cmd.Context(), apiadapter.CredentialKey)
				return errors.New("the session cookie was not accepted; log in again")
			}

			fmt.Fprintf(out, "Logged in as %s\n", session.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&cookie, "cookie", "", "Session cookie value (skips the interactive prompt)")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logoutErr := app.gate.Logout(cmd.Context())

			// Local state clears even when the server call failed.
			if err := app.creds.Delete(cmd.Context(), apiadapter.CredentialKey); err != nil {
				return fmt.Errorf("clear stored session cookie: %w", err)
			}

			if logoutErr != nil && !errors.Is(logoutErr, domain.ErrUnauthenticated) {
				fmt.Fprintf(cmd.OutOrStdout(), "Server logout failed (%v); local session cleared anyway.\n", logoutErr)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the resolved session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _ := app.gate.Resolve(cmd.Context())
			out := cmd.OutOrStdout()

			if !session.IsAuthenticated() {
				fmt.Fprintln(out, "Not logged in. Run `commco auth login` to start.")
				return nil
			}

			fmt.Fprintf(out, "Logged in as %s\n", session.User.Email)
			if session.User.ChannelID != "" {
				fmt.Fprintf(out, "Channel: %s\n", session.User.ChannelID)
			} else {
				fmt.Fprintln(out, "No channel linked yet.")
			}
			return nil
		},
	}
}

// requireSession resolves the session and translates the gate's navigation
// hint into command-level guidance.
func requireSession(cmd *cobra.Command, app *app) (domain.Session, error) {
	session, _ := app.gate.Resolve(cmd.Context())
	if session.IsAuthenticated() {
		return session, nil
	}
	return session, errors.New("not logged in; run `commco auth login` first")
}
