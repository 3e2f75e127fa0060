package merge

import (
	"context"
	"fmt"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/git"
)

// FastForwardResult is the outcome of a fast-forward
type FastForwardResult struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	NewTargetTip string `json:"new_target_tip"`
}

// FastForward moves target to the tip of source. No object is created.
// When target is checked out the worktree is forced to the new tip, and the
// merge is refused while the worktree has local changes.
func FastForward(ctx context.Context, repo *git.Repository, source, target string) (*FastForwardResult, error) {
	rel, err := relate(repo, source, target)
	if err != nil {
		return nil, err
	}
	ahead, err := repo.IsAncestor(rel.targetTip, rel.sourceTip)
	if err != nil {
		return nil, err
	}
	if rel.sourceTip == rel.targetTip || !ahead {
		return nil, fmt.Errorf("%w: %s is not strictly ahead of %s", gderrors.ErrFastForwardNotPossible, source, target)
	}
	if err := ensureClean(repo, target); err != nil {
		return nil, err
	}

	if err := repo.UpdateBranchRef(target, rel.sourceTip); err != nil {
		return nil, err
	}

	if repo.IsCheckedOut(target) {
		if err := repo.ForceCheckout(rel.sourceTip); err != nil {
			return nil, err
		}
		if err := repo.SetHead(target); err != nil {
			return nil, err
		}
	}

	return &FastForwardResult{
		Source:       source,
		Target:       target,
		NewTargetTip: rel.sourceTip.String(),
	}, nil
}

// ensureClean refuses to touch a checked-out target with local changes
func ensureClean(repo *git.Repository, target string) error {
	if !repo.IsCheckedOut(target) {
		return nil
	}
	dirty, err := repo.HasLocalChanges()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("%w: commit or remove them before merging into %s", gderrors.ErrUncommittedChanges, target)
	}
	return nil
}
