package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/tui"
)

// newGitHubCmd creates the github command
func newGitHubCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github",
		Short: "Browse the signed-in GitHub account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "repos",
		Short: "List your repositories, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				repos, err := actions.GitHubReposAction(ctx)
				if err != nil {
					return err
				}
				return a.print(cmd, repos, func(w io.Writer) {
					for _, r := range repos {
						line := r.FullName
						if r.Private {
							line += " " + tui.ColorDim("(private)")
						}
						_, _ = fmt.Fprintf(w, "%s  %s\n", line, tui.ColorDim(r.CloneURL))
					}
				})
			})
		},
	})
	return cmd
}
