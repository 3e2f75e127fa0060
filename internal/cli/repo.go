package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/tui"
	"gitdesk.dev/gitdesk/internal/workspace"
)

// newRepoCmd creates the repo command
func newRepoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Inspect and manage the remembered repositories",
	}

	printState := func(cmd *cobra.Command, state workspace.State) error {
		return a.print(cmd, state, func(w io.Writer) {
			for _, repo := range state.Repos {
				if repo == state.ActiveRepo {
					_, _ = fmt.Fprintln(w, "* "+tui.ColorGreen(repo))
				} else {
					_, _ = fmt.Fprintln(w, "  "+repo)
				}
			}
		})
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "check <path>",
			Short: "Check whether a path is a repository and remember it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					ok := actions.RepoCheckAction(ctx, args[0])
					return a.print(cmd, ok, func(w io.Writer) {
						_, _ = fmt.Fprintln(w, ok)
					})
				})
			},
		},
		&cobra.Command{
			Use:   "last",
			Short: "Print the last opened repository",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					last := actions.RepoLastAction(ctx)
					var value any
					if last != "" {
						value = last
					}
					return a.print(cmd, value, func(w io.Writer) {
						if last != "" {
							_, _ = fmt.Fprintln(w, last)
						}
					})
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List remembered repositories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					return printState(cmd, actions.RepoListAction(ctx))
				})
			},
		},
		&cobra.Command{
			Use:   "use <path>",
			Short: "Make a repository the active one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					state, err := actions.RepoUseAction(ctx, args[0])
					if err != nil {
						return err
					}
					return printState(cmd, state)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <path>",
			Short: "Forget a repository",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					state, err := actions.RepoRemoveAction(ctx, args[0])
					if err != nil {
						return err
					}
					return printState(cmd, state)
				})
			},
		},
	)
	return cmd
}

// newCloneCmd creates the clone command
func newCloneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <url> <dir>",
		Short: "Clone a repository and make it the active one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				result, err := actions.CloneAction(ctx, actions.CloneOptions{URL: args[0], Dir: args[1]})
				if err != nil {
					return err
				}
				return a.print(cmd, result, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "Cloned into %s\n", result.Path)
				})
			})
		},
	}
}
