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
	"gitdesk.dev/gitdesk/internal/tui"
)

// app carries the global flags shared by every command
type app struct {
	newContext func(context.Context) (*runtime.Context, error)

	repo  string
	token string
	json  bool
}

// run provides a runtime context with the global flags applied
func (a *app) run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := a.newContext(cmd.Context())
	if err != nil {
		return err
	}
	if a.repo != "" {
		ctx.RepoPath = a.repo
	}
	if a.token != "" {
		ctx.Token = a.token
	}
	stderr := cmd.ErrOrStderr()
	ctx.Progress = tui.NewProgressRenderer(stderr, tui.DetectProgressMode(stderr, a.json))

	defer func() {
		if err := ctx.Splog.Close(); err != nil {
			ctx.Splog.Debug("failed to close log: %v", err)
		}
	}()
	err = fn(ctx)
	if tip := tipFor(err); tip != "" {
		ctx.Splog.Tip(tip)
	}
	return err
}

// tipFor suggests the next step after a failure the user can act on
func tipFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gderrors.ErrNotAuthenticated):
		return "Run `gitdesk auth login` to sign in"
	case errors.Is(err, gderrors.ErrUncommittedChanges):
		return "Commit your changes with `gitdesk stage --all` and `gitdesk commit -m`, then merge again"
	case errors.Is(err, gderrors.ErrMergeConflict):
		return "The merge was aborted. Resolve the conflicting files on one branch and merge again"
	case errors.Is(err, gderrors.ErrNoRepositoryAvailable):
		return "Open a repository with `gitdesk repo use <path>` or pass --repo"
	default:
		return ""
	}
}

// print writes value as JSON with --json, otherwise calls human
func (a *app) print(cmd *cobra.Command, value any, human func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.json {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	if human != nil {
		human(w)
	}
	return nil
}

// done prints a confirmation line, or {"ok":true} with --json
func (a *app) done(cmd *cobra.Command, format string, args ...any) error {
	return a.print(cmd, map[string]bool{"ok": true}, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, format+"\n", args...)
	})
}
