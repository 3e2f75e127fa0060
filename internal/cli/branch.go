package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/tui"
)

// newBranchCmd creates the branch command
func newBranchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branch",
		Short:   "List, create and check out branches",
		Aliases: []string{"b"},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List local and remote-tracking branches",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					branches, err := actions.BranchListAction(ctx)
					if err != nil {
						return err
					}
					return a.print(cmd, branches, func(w io.Writer) {
						for _, b := range branches {
							_, _ = fmt.Fprintln(w, tui.FormatBranch(b))
						}
					})
				})
			},
		},
		&cobra.Command{
			Use:   "remote",
			Short: "List remote-tracking branch names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					names, err := actions.BranchRemoteAction(ctx)
					if err != nil {
						return err
					}
					return a.print(cmd, names, func(w io.Writer) {
						for _, name := range names {
							_, _ = fmt.Fprintln(w, name)
						}
					})
				})
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a branch at HEAD",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					if err := actions.BranchCreateAction(ctx, args[0]); err != nil {
						return err
					}
					return a.done(cmd, "Created branch %s", args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "checkout <name>",
			Short: "Check out a local branch",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					if err := actions.BranchCheckoutAction(ctx, args[0]); err != nil {
						return err
					}
					return a.done(cmd, "Switched to branch %s", args[0])
				})
			},
		},
	)
	return cmd
}
