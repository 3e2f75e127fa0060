// Package cli implements the gitdesk command tree on top of the actions package.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/runtime"
)

// Options configures the root command
type Options struct {
	Version string
	// NewContext builds the runtime context; nil means runtime.GetContext
	NewContext func(context.Context) (*runtime.Context, error)
}

// NewRootCmd creates the root cobra command
func NewRootCmd(opts Options) *cobra.Command {
	a := &app{newContext: opts.NewContext}
	if a.newContext == nil {
		a.newContext = runtime.GetContext
	}

	rootCmd := &cobra.Command{
		Use:     "gitdesk",
		Short:   "gitdesk manages local Git workspaces: branches, merges, staging and remotes",
		Version: opts.Version,
		Long: `gitdesk manages local Git workspaces: branches, merges, staging and remotes.

It remembers the repositories you open, merges branches by fast-forward or
three-way merge, and authenticates pushes and fetches with your GitHub session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.repo, "repo", "", "Repository path (defaults to the last opened repository)")
	rootCmd.PersistentFlags().BoolVar(&a.json, "json", false, "Print results and errors as JSON")
	rootCmd.PersistentFlags().StringVar(&a.token, "token", "", "Token for network operations (defaults to the stored session)")

	rootCmd.AddCommand(
		newRepoCmd(a),
		newCloneCmd(a),
		newStatusCmd(a),
		newDiffCmd(a),
		newLogCmd(a),
		newBranchCmd(a),
		newMergeCmd(a),
		newStageCmd(a),
		newUnstageCmd(a),
		newCommitCmd(a),
		newFetchCmd(a),
		newPushCmd(a),
		newAuthCmd(a),
		newGitHubCmd(a),
	)

	return rootCmd
}

// Execute runs the command tree with args and returns the process exit code.
// Failures are printed to stderr, or to stdout as a JSON payload with --json.
func Execute(ctx context.Context, opts Options, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	jsonOutput, _ := rootCmd.PersistentFlags().GetBool("json")
	if jsonOutput {
		data, _ := json.Marshal(struct {
			Error *gderrors.Payload `json:"error"`
		}{gderrors.ToPayload(err)})
		_, _ = fmt.Fprintln(stdout, string(data))
	} else {
		_, _ = fmt.Fprintf(stderr, "❌ %s\n", err)
	}

	var conflict *gderrors.MergeConflictError
	if errors.As(err, &conflict) {
		return 2
	}
	return 1
}
