package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
)

// BranchKind distinguishes local branches from remote-tracking ones
type BranchKind string

const (
	// BranchLocal is a branch under refs/heads
	BranchLocal BranchKind = "Local"
	// BranchRemote is a remote-tracking branch under refs/remotes
	BranchRemote BranchKind = "Remote"
)

// BranchInfo describes one branch in a listing
type BranchInfo struct {
	Name   string     `json:"name"`
	Kind   BranchKind `json:"type_of"`
	IsHead bool       `json:"is_head"`
}

// ListBranches returns local branches followed by remote-tracking branches.
// Remote HEAD aliases (origin/HEAD) are skipped.
func (r *Repository) ListBranches() ([]BranchInfo, error) {
	current, err := r.CurrentBranch()
	if err != nil && !errors.Is(err, gderrors.ErrNotOnBranch) {
		return nil, err
	}

	refs, err := r.References()
	if err != nil {
		return nil, fmt.Errorf("failed to get references: %w", err)
	}

	var local, remote []BranchInfo
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsBranch():
			local = append(local, BranchInfo{
				Name:   name.Short(),
				Kind:   BranchLocal,
				IsHead: name.Short() == current,
			})
		case name.IsRemote():
			if strings.HasSuffix(name.Short(), "/HEAD") {
				return nil
			}
			remote = append(remote, BranchInfo{Name: name.Short(), Kind: BranchRemote})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Slice(local, func(i, j int) bool { return local[i].Name < local[j].Name })
	sort.Slice(remote, func(i, j int) bool { return remote[i].Name < remote[j].Name })
	return append(local, remote...), nil
}

// ListRemoteBranches returns remote-tracking branch names such as origin/main
func (r *Repository) ListRemoteBranches() ([]string, error) {
	branches, err := r.ListBranches()
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, b := range branches {
		if b.Kind == BranchRemote {
			names = append(names, b.Name)
		}
	}
	return names, nil
}

// CreateBranch creates a local branch at the HEAD commit without checking it out
func (r *Repository) CreateBranch(branchName string) error {
	refName := plumbing.NewBranchReferenceName(branchName)
	if err := refName.Validate(); err != nil {
		return fmt.Errorf("invalid branch name %q: %w", branchName, err)
	}
	if _, err := r.Reference(refName, false); err == nil {
		return fmt.Errorf("branch %s already exists", branchName)
	}

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	if head == nil {
		return fmt.Errorf("cannot create branch %s: HEAD has no commits", branchName)
	}

	if err := r.Storer.SetReference(plumbing.NewHashReference(refName, head.Hash)); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing local branch
func (r *Repository) CheckoutBranch(branchName string) error {
	if _, err := r.BranchTip(branchName); err != nil {
		return err
	}

	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branchName),
	}); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// UpdateBranchRef points a local branch at a commit
func (r *Repository) UpdateBranchRef(branchName string, hash plumbing.Hash) error {
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branchName), hash)
	if err := r.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to update branch ref %s: %w", branchName, err)
	}
	return nil
}

// SetHead points the symbolic HEAD at a local branch
func (r *Repository) SetHead(branchName string) error {
	ref := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branchName))
	if err := r.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to set HEAD to %s: %w", branchName, err)
	}
	return nil
}

// ForceCheckout makes the index and worktree match commit. HEAD's branch ref is moved to commit.
func (r *Repository) ForceCheckout(hash plumbing.Hash) error {
	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := wt.Reset(&gogit.ResetOptions{Commit: hash, Mode: gogit.HardReset}); err != nil {
		return fmt.Errorf("failed to update worktree to %s: %w", hash, err)
	}
	return nil
}
