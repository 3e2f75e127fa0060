package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/runtime"
)

// newStageCmd creates the stage command
func newStageCmd(a *app) *cobra.Command {
	var opts actions.StageOptions

	cmd := &cobra.Command{
		Use:   "stage [files...]",
		Short: "Add files to the index",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return a.run(cmd, func(ctx *runtime.Context) error {
				if err := actions.StageAction(ctx, opts); err != nil {
					return err
				}
				return a.done(cmd, "Staged %s", describePaths(opts))
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Stage every change, including deletions")
	return cmd
}

// newUnstageCmd creates the unstage command
func newUnstageCmd(a *app) *cobra.Command {
	var opts actions.StageOptions

	cmd := &cobra.Command{
		Use:   "unstage [files...]",
		Short: "Reset files in the index to HEAD",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return a.run(cmd, func(ctx *runtime.Context) error {
				if err := actions.UnstageAction(ctx, opts); err != nil {
					return err
				}
				return a.done(cmd, "Unstaged %s", describePaths(opts))
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Unstage everything")
	return cmd
}

func describePaths(opts actions.StageOptions) string {
	if opts.All {
		return "all changes"
	}
	if len(opts.Paths) == 1 {
		return opts.Paths[0]
	}
	return fmt.Sprintf("%d files", len(opts.Paths))
}

// newCommitCmd creates the commit command
func newCommitCmd(a *app) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record the staged changes on the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				oid, err := actions.CommitAction(ctx, message)
				if err != nil {
					return err
				}
				return a.print(cmd, map[string]string{"oid": oid}, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "Committed %s\n", short(oid))
				})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	return cmd
}
