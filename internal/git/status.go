package git

import (
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// ChangeStatus is the kind of change recorded for a path
type ChangeStatus string

const (
	StatusNew      ChangeStatus = "New"
	StatusDeleted  ChangeStatus = "Deleted"
	StatusModified ChangeStatus = "Modified"
)

// FileChange is one changed path
type FileChange struct {
	Path   string       `json:"path"`
	Status ChangeStatus `json:"status"`
	// Staged is set when the change exists only in the index
	Staged bool `json:"staged"`
}

// Status returns working tree changes, including untracked files.
// Paths whose worktree copy matches the index but differ from HEAD are
// reported as staged.
func (r *Repository) Status() ([]FileChange, error) {
	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	changes := []FileChange{}
	for path, fs := range status {
		if change, ok := worktreeChange(fs.Worktree); ok {
			changes = append(changes, FileChange{Path: path, Status: change})
			continue
		}
		if change, ok := stagedChange(fs.Staging); ok {
			changes = append(changes, FileChange{Path: path, Status: change, Staged: true})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}

// HasLocalChanges reports whether the index or worktree differs from HEAD.
// Untracked files count, since a forced checkout may remove them.
func (r *Repository) HasLocalChanges() (bool, error) {
	wt, err := r.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	return !status.IsClean(), nil
}

func worktreeChange(code gogit.StatusCode) (ChangeStatus, bool) {
	switch code {
	case gogit.Untracked:
		return StatusNew, true
	case gogit.Deleted:
		return StatusDeleted, true
	case gogit.Modified, gogit.UpdatedButUnmerged:
		return StatusModified, true
	}
	return "", false
}

func stagedChange(code gogit.StatusCode) (ChangeStatus, bool) {
	switch code {
	case gogit.Added, gogit.Copied:
		return StatusNew, true
	case gogit.Deleted:
		return StatusDeleted, true
	case gogit.Modified, gogit.Renamed:
		return StatusModified, true
	}
	return "", false
}

// CommitChanges returns the paths a commit changed relative to its first parent.
// A root commit is compared against the empty tree.
func (r *Repository) CommitChanges(rev string) ([]FileChange, error) {
	commit, err := r.ResolveCommit(rev)
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}
	parentTree, err := firstParentTree(commit)
	if err != nil {
		return nil, err
	}

	diff, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff commit %s: %w", rev, err)
	}

	changes := []FileChange{}
	for _, change := range diff {
		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("failed to classify change: %w", err)
		}
		switch action {
		case merkletrie.Insert:
			changes = append(changes, FileChange{Path: change.To.Name, Status: StatusNew})
		case merkletrie.Delete:
			changes = append(changes, FileChange{Path: change.From.Name, Status: StatusDeleted})
		case merkletrie.Modify:
			changes = append(changes, FileChange{Path: change.To.Name, Status: StatusModified})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}

// firstParentTree returns the first parent's tree, or nil for a root commit
func firstParentTree(commit *object.Commit) (*object.Tree, error) {
	if commit.NumParents() == 0 {
		return nil, nil
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return nil, fmt.Errorf("failed to get parent of %s: %w", commit.Hash, err)
	}
	tree, err := parent.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get parent tree: %w", err)
	}
	return tree, nil
}
