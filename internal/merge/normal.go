package merge

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/git"
)

// NormalResult is the outcome of a three-way merge
type NormalResult struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	MergeCommit string `json:"merge_commit"`
}

// Message returns the commit message for merging source into target
func Message(source, target string) string {
	return fmt.Sprintf("merge branch '%s' into '%s'", source, target)
}

// Normal merges diverged branches with a commit whose parents are the
// target tip and the source tip. Conflicts abort the merge without a commit.
func Normal(ctx context.Context, repo *git.Repository, source, target string) (*NormalResult, error) {
	rel, err := relate(repo, source, target)
	if err != nil {
		return nil, err
	}
	if rel.sourceTip == rel.targetTip || (rel.hasBase && (rel.base == rel.sourceTip || rel.base == rel.targetTip)) {
		return nil, fmt.Errorf("%w: %s and %s have not diverged", gderrors.ErrNormalMergeNotRequired, source, target)
	}

	if err := ensureClean(repo, target); err != nil {
		return nil, err
	}

	merged, err := repo.MergeTrees(ctx, rel.targetTip, rel.sourceTip)
	if err != nil {
		return nil, err
	}
	if !merged.Clean() {
		if err := repo.CleanupState(); err != nil {
			return nil, err
		}
		return nil, gderrors.NewMergeConflictError(source, target, merged.Conflicts)
	}

	commit, err := repo.CreateCommit(merged.Tree, []plumbing.Hash{rel.targetTip, rel.sourceTip}, Message(source, target))
	if err != nil {
		return nil, err
	}
	if err := repo.UpdateBranchRef(target, commit); err != nil {
		return nil, err
	}
	if err := repo.CleanupState(); err != nil {
		return nil, err
	}

	if repo.IsCheckedOut(target) {
		if err := repo.ForceCheckout(commit); err != nil {
			return nil, err
		}
	}

	return &NormalResult{
		Source:      source,
		Target:      target,
		MergeCommit: commit.String(),
	}, nil
}
