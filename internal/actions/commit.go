package actions

import (
	"gitdesk.dev/gitdesk/internal/runtime"
)

// CommitAction commits the index with message and returns the new commit id
func CommitAction(ctx *runtime.Context, message string) (string, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return "", err
	}
	hash, err := repo.Commit(message)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}
