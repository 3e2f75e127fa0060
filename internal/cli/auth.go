package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/github"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/tui"
	"gitdesk.dev/gitdesk/internal/utils"
)

// newAuthCmd creates the auth command
func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the GitHub session stored in the keychain",
	}
	cmd.AddCommand(newAuthLoginCmd(a), newAuthLogoutCmd(a), newAuthStatusCmd(a), newAuthTokenCmd(a))
	return cmd
}

func newAuthLoginCmd(a *app) *cobra.Command {
	var (
		withToken bool
		web       bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to GitHub with the device flow or a token",
		Long: `Sign in to GitHub with the device flow or a token.

With --with-token the token is read from standard input, or prompted for
when standard input is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				opts := actions.AuthLoginOptions{
					WithToken: withToken,
					Notify: func(code github.DeviceCode) {
						ctx.Splog.Info("Open %s and enter the code %s", code.VerificationURI, tui.ColorYellow(code.UserCode))
						if web {
							if err := utils.OpenBrowser(code.VerificationURI); err != nil {
								ctx.Splog.Warn("Could not open a browser: %v", err)
							}
						}
					},
				}
				if withToken {
					token, err := utils.ReadInput(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("failed to read token: %w", err)
					}
					opts.Token = token
				}

				status, err := actions.AuthLoginAction(ctx, opts)
				if err != nil {
					return err
				}
				return a.print(cmd, status, func(w io.Writer) {
					printAuthStatus(w, status)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&withToken, "with-token", false, "Store a personal access token instead of using the device flow")
	cmd.Flags().BoolVarP(&web, "web", "w", false, "Open the device verification page in the browser")
	return cmd
}

func newAuthLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				if err := actions.AuthLogoutAction(ctx); err != nil {
					return err
				}
				return a.done(cmd, "Logged out")
			})
		},
	}
}

func newAuthStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is stored and whose it is",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				status, err := actions.AuthStatusAction(ctx)
				if err != nil {
					return err
				}
				return a.print(cmd, status, func(w io.Writer) {
					printAuthStatus(w, status)
				})
			})
		},
	}
}

func newAuthTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				token, err := actions.AuthTokenAction(ctx)
				if err != nil {
					return err
				}
				return a.print(cmd, map[string]string{"token": token}, func(w io.Writer) {
					_, _ = fmt.Fprintln(w, token)
				})
			})
		},
	}
}

func printAuthStatus(w io.Writer, status *actions.AuthStatus) {
	switch {
	case !status.Authenticated:
		_, _ = fmt.Fprintln(w, "Not logged in")
	case status.User != nil:
		_, _ = fmt.Fprintf(w, "Logged in as %s\n", tui.ColorGreen(status.User.Login))
	default:
		_, _ = fmt.Fprintln(w, "Logged in")
	}
}
