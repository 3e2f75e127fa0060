package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"gitdesk.dev/gitdesk/internal/auth"
	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/progress"
)

// RemoteURL returns the first URL configured for remoteName
func (r *Repository) RemoteURL(remoteName string) (string, error) {
	remote, err := r.Remote(remoteName)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", fmt.Errorf("%w: %s", gderrors.ErrRemoteNotFound, remoteName)
		}
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s has no url", gderrors.ErrRemoteNotFound, remoteName)
	}
	return urls[0], nil
}

// Fetch downloads objects and refs from remoteName.
// An already up-to-date remote counts as success.
func (r *Repository) Fetch(ctx context.Context, remoteName string, negotiate auth.Negotiator, sink progress.Sink) error {
	url, err := r.RemoteURL(remoteName)
	if err != nil {
		return err
	}

	reporter := progress.NewReporter(progress.PhaseDownloading, sink)
	writer := progress.NewWriter(reporter)

	err = auth.WithCredentials(url, negotiate, func(method transport.AuthMethod) error {
		return r.FetchContext(ctx, &gogit.FetchOptions{
			RemoteName: remoteName,
			Auth:       method,
			Progress:   writer,
		})
	})
	writer.Flush()
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to fetch %s: %w", remoteName, err)
	}

	reporter.Complete()
	return nil
}

// Push sends the current branch to the branch of the same name on remoteName
func (r *Repository) Push(ctx context.Context, remoteName string, negotiate auth.Negotiator, sink progress.Sink) error {
	branch, err := r.CurrentBranch()
	if err != nil {
		if errors.Is(err, gderrors.ErrNotOnBranch) {
			return gderrors.ErrDetachedHeadPush
		}
		return err
	}

	url, err := r.RemoteURL(remoteName)
	if err != nil {
		return err
	}

	refspec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	reporter := progress.NewReporter(progress.PhasePushing, sink)
	writer := progress.NewWriter(reporter)

	err = auth.WithCredentials(url, negotiate, func(method transport.AuthMethod) error {
		return r.PushContext(ctx, &gogit.PushOptions{
			RemoteName: remoteName,
			RefSpecs:   []config.RefSpec{refspec},
			Auth:       method,
			Progress:   writer,
		})
	})
	writer.Flush()
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remoteName, err)
	}

	reporter.Finish(progress.PhaseCompleted)
	return nil
}
