package actions

import (
	"strings"

	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/workspace"
)

// RepoCheckAction reports whether path is a repository. A repository is
// remembered as the last opened one; failing to remember it is only logged.
func RepoCheckAction(ctx *runtime.Context, path string) bool {
	path = strings.TrimSpace(path)
	if !git.IsRepository(path) {
		return false
	}
	if err := ctx.Registry.Remember(path); err != nil {
		ctx.Splog.Warn("Could not remember %s: %v", path, err)
	}
	return true
}

// RepoLastAction returns the last opened repository path, empty when none
func RepoLastAction(ctx *runtime.Context) string {
	return ctx.Registry.LastOpened()
}

// RepoListAction returns the known repositories and the active one
func RepoListAction(ctx *runtime.Context) workspace.State {
	return ctx.Registry.State()
}

// RepoUseAction makes path the active repository. The path must open as a repository.
func RepoUseAction(ctx *runtime.Context, path string) (workspace.State, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return workspace.State{}, workspace.ErrEmptyPath
	}
	if _, err := workspace.Resolve(path, "", nil); err != nil {
		return workspace.State{}, err
	}
	return ctx.Registry.SetActive(path)
}

// RepoRemoveAction forgets path
func RepoRemoveAction(ctx *runtime.Context, path string) (workspace.State, error) {
	return ctx.Registry.Remove(strings.TrimSpace(path))
}
