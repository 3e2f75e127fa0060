package git

import (
	"context"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"gitdesk.dev/gitdesk/internal/auth"
	"gitdesk.dev/gitdesk/internal/progress"
)

// Clone clones url into dir and opens the result
func Clone(ctx context.Context, url, dir string, negotiate auth.Negotiator, sink progress.Sink) (*Repository, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	reporter := progress.NewReporter(progress.PhaseDownloading, sink)
	writer := progress.NewWriter(reporter)

	var cloned *gogit.Repository
	err = auth.WithCredentials(url, negotiate, func(method transport.AuthMethod) error {
		repo, err := gogit.PlainCloneContext(ctx, absDir, false, &gogit.CloneOptions{
			URL:      url,
			Auth:     method,
			Progress: writer,
		})
		if err != nil {
			return err
		}
		cloned = repo
		return nil
	})
	writer.Flush()
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", url, err)
	}

	reporter.Complete()
	return &Repository{Repository: cloned, path: absDir}, nil
}
