package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// MergeBase returns the best common ancestor of two commits.
// found is false when the histories share no commit.
func (r *Repository) MergeBase(a, b plumbing.Hash) (base plumbing.Hash, found bool, err error) {
	if a == b {
		return a, true, nil
	}

	commit1, err := r.CommitObject(a)
	if err != nil {
		return plumbing.ZeroHash, false, fmt.Errorf("failed to get commit %s: %w", a, err)
	}
	commit2, err := r.CommitObject(b)
	if err != nil {
		return plumbing.ZeroHash, false, fmt.Errorf("failed to get commit %s: %w", b, err)
	}

	mergeBases, err := commit1.MergeBase(commit2)
	if err != nil {
		return plumbing.ZeroHash, false, fmt.Errorf("failed to find merge base: %w", err)
	}
	if len(mergeBases) == 0 {
		return plumbing.ZeroHash, false, nil
	}
	return mergeBases[0].Hash, true, nil
}

// IsAncestor checks if ancestor is reachable from descendant
func (r *Repository) IsAncestor(ancestor, descendant plumbing.Hash) (bool, error) {
	if ancestor == descendant {
		return true, nil
	}
	ancestorCommit, err := r.CommitObject(ancestor)
	if err != nil {
		return false, fmt.Errorf("failed to get ancestor commit: %w", err)
	}
	descendantCommit, err := r.CommitObject(descendant)
	if err != nil {
		return false, fmt.Errorf("failed to get descendant commit: %w", err)
	}
	return ancestorCommit.IsAncestor(descendantCommit)
}
