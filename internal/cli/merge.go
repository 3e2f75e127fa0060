package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitdesk.dev/gitdesk/internal/actions"
	"gitdesk.dev/gitdesk/internal/merge"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/tui"
)

// newMergeCmd creates the merge command
func newMergeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Analyze and merge one branch into another",
		Long: `Analyze and merge one branch into another.

Every subcommand takes the source branch first and the target branch second.
The target is updated; the source is left untouched.`,
	}

	mergeArgs := func(args []string) actions.MergeOptions {
		return actions.MergeOptions{Source: args[0], Target: args[1]}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "analyze <source> <target>",
			Short: "Classify the branches as up to date, fast-forward or normal merge",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					analysis, err := actions.MergeAnalyzeAction(ctx, mergeArgs(args))
					if err != nil {
						return err
					}
					return a.print(cmd, analysis, func(w io.Writer) {
						_, _ = fmt.Fprintf(w, "%s into %s: %s\n", analysis.Source, analysis.Target, tui.ColorCyan(analysis.Verdict.String()))
					})
				})
			},
		},
		&cobra.Command{
			Use:   "ff <source> <target>",
			Short: "Fast-forward the target to the source",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					result, err := actions.MergeFastForwardAction(ctx, mergeArgs(args))
					if err != nil {
						return err
					}
					return a.print(cmd, result, func(w io.Writer) {
						printFastForward(w, result)
					})
				})
			},
		},
		&cobra.Command{
			Use:   "normal <source> <target>",
			Short: "Create a merge commit of the source into the target",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					result, err := actions.MergeNormalAction(ctx, mergeArgs(args))
					if err != nil {
						return err
					}
					return a.print(cmd, result, func(w io.Writer) {
						printNormal(w, result)
					})
				})
			},
		},
		&cobra.Command{
			Use:   "run <source> <target>",
			Short: "Fast-forward or merge as the branches require",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx *runtime.Context) error {
					outcome, err := actions.MergeRunAction(ctx, mergeArgs(args))
					if err != nil {
						return err
					}
					return a.print(cmd, outcome, func(w io.Writer) {
						switch {
						case outcome.FastForward != nil:
							printFastForward(w, outcome.FastForward)
						case outcome.Normal != nil:
							printNormal(w, outcome.Normal)
						default:
							_, _ = fmt.Fprintf(w, "%s is up to date with %s\n", outcome.Analysis.Target, outcome.Analysis.Source)
						}
					})
				})
			},
		},
	)
	return cmd
}

func printFastForward(w io.Writer, r *merge.FastForwardResult) {
	_, _ = fmt.Fprintf(w, "Fast-forwarded %s to %s (%s)\n", r.Target, r.Source, tui.ColorYellow(short(r.NewTargetTip)))
}

func printNormal(w io.Writer, r *merge.NormalResult) {
	_, _ = fmt.Fprintf(w, "Merged %s into %s (%s)\n", r.Source, r.Target, tui.ColorYellow(short(r.MergeCommit)))
}

func short(oid string) string {
	if len(oid) > 7 {
		return oid[:7]
	}
	return oid
}
