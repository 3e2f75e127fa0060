package actions

import (
	"strings"

	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/internal/runtime"
)

// BranchListAction lists local and remote-tracking branches
func BranchListAction(ctx *runtime.Context) ([]git.BranchInfo, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	return repo.ListBranches()
}

// BranchRemoteAction lists remote-tracking branch names such as origin/main
func BranchRemoteAction(ctx *runtime.Context) ([]string, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	return repo.ListRemoteBranches()
}

// BranchCreateAction creates a branch at HEAD
func BranchCreateAction(ctx *runtime.Context, name string) error {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	if err := repo.CreateBranch(strings.TrimSpace(name)); err != nil {
		return err
	}
	ctx.Splog.Debug("Created branch %s", name)
	return nil
}

// BranchCheckoutAction switches the worktree to a branch
func BranchCheckoutAction(ctx *runtime.Context, name string) error {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	return repo.CheckoutBranch(strings.TrimSpace(name))
}
