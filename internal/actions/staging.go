package actions

import (
	"fmt"

	"gitdesk.dev/gitdesk/internal/runtime"
)

// StageOptions contains options for the stage and unstage commands
type StageOptions struct {
	Paths []string
	All   bool
}

// StageAction adds paths, or every change when All is set, to the index
func StageAction(ctx *runtime.Context, opts StageOptions) error {
	if !opts.All && len(opts.Paths) == 0 {
		return fmt.Errorf("no paths to stage")
	}
	repo, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	if opts.All {
		return repo.StageAll()
	}
	for _, path := range opts.Paths {
		if err := repo.StageFile(path); err != nil {
			return err
		}
	}
	return nil
}

// UnstageAction resets paths, or the whole index when All is set, to HEAD
func UnstageAction(ctx *runtime.Context, opts StageOptions) error {
	if !opts.All && len(opts.Paths) == 0 {
		return fmt.Errorf("no paths to unstage")
	}
	repo, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	if opts.All {
		return repo.UnstageAll()
	}
	for _, path := range opts.Paths {
		if err := repo.UnstageFile(path); err != nil {
			return err
		}
	}
	return nil
}
