package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository rooted at path.
// Parent directories are not searched.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpen(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// IsRepository reports whether path holds a .git entry
func IsRepository(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// Root returns the worktree root of the repository
func (r *Repository) Root() string {
	return r.path
}

// GitDir returns the repository's .git directory
func (r *Repository) GitDir() string {
	if fs, ok := r.Storer.(*filesystem.Storage); ok {
		return fs.Filesystem().Root()
	}
	return filepath.Join(r.path, ".git")
}

// BranchTip returns the commit a local branch points at
func (r *Repository) BranchTip(branchName string) (plumbing.Hash, error) {
	ref, err := r.Reference(plumbing.NewBranchReferenceName(branchName), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, gderrors.NewBranchNotFoundError(branchName)
		}
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve branch %s: %w", branchName, err)
	}
	return ref.Hash(), nil
}

// CurrentBranch returns the short name of the checked out branch.
// A detached HEAD returns ErrNotOnBranch; an unborn branch still has a name.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", gderrors.ErrNotOnBranch
	}
	return head.Target().Short(), nil
}

// IsCheckedOut reports whether branchName is the branch HEAD points at
func (r *Repository) IsCheckedOut(branchName string) bool {
	current, err := r.CurrentBranch()
	return err == nil && current == branchName
}

// HeadCommit returns the commit HEAD resolves to, or nil on an unborn branch
func (r *Repository) HeadCommit() (*object.Commit, error) {
	head, err := r.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	commit, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD commit: %w", err)
	}
	return commit, nil
}

// ResolveCommit resolves a revision (sha, branch, tag) to a commit
func (r *Repository) ResolveCommit(rev string) (*object.Commit, error) {
	hash, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", rev, err)
	}
	commit, err := r.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", rev, err)
	}
	return commit, nil
}
