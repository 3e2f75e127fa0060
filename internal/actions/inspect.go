package actions

import (
	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/internal/runtime"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Commit lists the changes introduced by a commit instead of the worktree
	Commit string
}

// StatusAction lists changed paths in the worktree or in one commit
func StatusAction(ctx *runtime.Context, opts StatusOptions) ([]git.FileChange, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	if opts.Commit != "" {
		return repo.CommitChanges(opts.Commit)
	}
	return repo.Status()
}

// DiffOptions contains options for the diff command
type DiffOptions struct {
	Path   string
	Commit string
}

// DiffAction returns both sides of a file, either worktree against HEAD or
// a commit against its first parent
func DiffAction(ctx *runtime.Context, opts DiffOptions) (*git.DiffState, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	if opts.Commit != "" {
		return repo.CommitFileDiff(opts.Commit, opts.Path)
	}
	return repo.FileDiff(opts.Path)
}

// LogOptions contains options for the log command
type LogOptions struct {
	// Limit caps the listing; zero means the configured page size
	Limit int
}

// LogAction returns the history from HEAD, newest first
func LogAction(ctx *runtime.Context, opts LogOptions) ([]git.CommitInfo, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = ctx.Config.HistoryPageSize
	}
	return repo.Commits(limit)
}
