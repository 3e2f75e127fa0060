package git

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrEmptyCommitMessage is returned when committing without a message
var ErrEmptyCommitMessage = errors.New("commit message cannot be empty")

// Signature returns the author identity from the repository and global git config
func (r *Repository) Signature() (*object.Signature, error) {
	cfg, err := r.ConfigScoped(gitconfig.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return nil, fmt.Errorf("git user.name and user.email must be configured")
	}
	return &object.Signature{
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
		When:  time.Now(),
	}, nil
}

// Commit records the staged changes on the current branch and returns the new commit id
func (r *Repository) Commit(message string) (plumbing.Hash, error) {
	if strings.TrimSpace(message) == "" {
		return plumbing.ZeroHash, ErrEmptyCommitMessage
	}

	sig, err := r.Signature()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	wt, err := r.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get worktree: %w", err)
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to commit: %w", err)
	}
	return hash, nil
}

// CreateCommit writes a commit object for tree with the given parents.
// No ref is moved.
func (r *Repository) CreateCommit(tree plumbing.Hash, parents []plumbing.Hash, message string) (plumbing.Hash, error) {
	sig, err := r.Signature()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	commit := &object.Commit{
		Author:       *sig,
		Committer:    *sig,
		Message:      message,
		TreeHash:     tree,
		ParentHashes: parents,
	}

	obj := r.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to encode commit: %w", err)
	}
	hash, err := r.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to write commit: %w", err)
	}
	return hash, nil
}
