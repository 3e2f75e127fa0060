package actions

import (
	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/workspace"
)

// CloneOptions contains options for the clone command
type CloneOptions struct {
	URL string
	Dir string
}

// CloneResult is where the repository landed and the updated registry
type CloneResult struct {
	Path  string          `json:"path"`
	State workspace.State `json:"state"`
}

// CloneAction clones URL into Dir with progress, then makes it the active
// repository. A registry failure after a successful clone is returned.
func CloneAction(ctx *runtime.Context, opts CloneOptions) (*CloneResult, error) {
	ctx.Splog.Debug("Cloning %s into %s", opts.URL, opts.Dir)

	repo, err := git.Clone(ctx.Context, opts.URL, opts.Dir, ctx.Negotiator(), ctx.Progress)
	if err != nil {
		return nil, err
	}

	state, err := ctx.Registry.SetActive(repo.Root())
	if err != nil {
		return nil, err
	}
	return &CloneResult{Path: repo.Root(), State: state}, nil
}
