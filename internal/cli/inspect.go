package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/tui"
)

// newStatusCmd creates the status command
func newStatusCmd(a *app) *cobra.Command {
	var opts actions.StatusOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "List changed files in the worktree or in a commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				changes, err := actions.StatusAction(ctx, opts)
				if err != nil {
					return err
				}
				return a.print(cmd, changes, func(w io.Writer) {
					if len(changes) == 0 {
						_, _ = fmt.Fprintln(w, tui.ColorDim("nothing to commit, working tree clean"))
						return
					}
					for _, c := range changes {
						_, _ = fmt.Fprintln(w, tui.FormatChange(c))
					}
				})
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Commit, "commit", "c", "", "Show the files changed by this commit")
	return cmd
}

// newDiffCmd creates the diff command
func newDiffCmd(a *app) *cobra.Command {
	var opts actions.DiffOptions

	cmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Show the old and new contents of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return a.run(cmd, func(ctx *runtime.Context) error {
				diff, err := actions.DiffAction(ctx, opts)
				if err != nil {
					return err
				}
				return a.print(cmd, diff, func(w io.Writer) {
					_, _ = fmt.Fprintln(w, tui.ColorRed("--- old"))
					_, _ = fmt.Fprint(w, diff.OldContent)
					_, _ = fmt.Fprintln(w, tui.ColorGreen("+++ new"))
					_, _ = fmt.Fprint(w, diff.NewContent)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Commit, "commit", "c", "", "Compare the file in this commit with its first parent")
	return cmd
}

// newLogCmd creates the log command
func newLogCmd(a *app) *cobra.Command {
	var opts actions.LogOptions

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show the history of the current branch, newest first",
		Aliases: []string{"l"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				commits, err := actions.LogAction(ctx, opts)
				if err != nil {
					return err
				}
				return a.print(cmd, commits, func(w io.Writer) {
					for _, c := range commits {
						_, _ = fmt.Fprintln(w, tui.FormatCommit(c))
					}
				})
			})
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "max-count", "n", 0, "Number of commits to show (defaults to the configured page size)")
	return cmd
}
