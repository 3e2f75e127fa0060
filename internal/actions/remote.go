package actions

import (
	"gitdesk.dev/gitdesk/internal/runtime"
)

// RemoteOptions contains options for fetch and push
type RemoteOptions struct {
	// Remote defaults to the configured remote
	Remote string
}

func (o RemoteOptions) remote(ctx *runtime.Context) string {
	if o.Remote != "" {
		return o.Remote
	}
	return ctx.Config.Remote
}

// FetchAction fetches from the remote, reporting download progress
func FetchAction(ctx *runtime.Context, opts RemoteOptions) error {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	return repo.Fetch(ctx.Context, opts.remote(ctx), ctx.Negotiator(), ctx.Progress)
}

// PushAction pushes the current branch to the remote, reporting upload progress
func PushAction(ctx *runtime.Context, opts RemoteOptions) error {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	return repo.Push(ctx.Context, opts.remote(ctx), ctx.Negotiator(), ctx.Progress)
}
