package cli

import (
	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/runtime"
)

// newFetchCmd creates the fetch command
func newFetchCmd(a *app) *cobra.Command {
	var opts actions.RemoteOptions

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download objects and refs from the remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				if err := actions.FetchAction(ctx, opts); err != nil {
					return err
				}
				return a.done(cmd, "Fetched")
			})
		},
	}

	cmd.Flags().StringVar(&opts.Remote, "remote", "", "Remote to fetch from (defaults to the configured remote)")
	return cmd
}

// newPushCmd creates the push command
func newPushCmd(a *app) *cobra.Command {
	var opts actions.RemoteOptions

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the current branch to the remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				if err := actions.PushAction(ctx, opts); err != nil {
					return err
				}
				return a.done(cmd, "Pushed")
			})
		},
	}

	cmd.Flags().StringVar(&opts.Remote, "remote", "", "Remote to push to (defaults to the configured remote)")
	return cmd
}
