package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// stateFiles mark an in-progress merge, cherry-pick or revert in the git dir
var stateFiles = []string{
	"MERGE_HEAD",
	"MERGE_MSG",
	"MERGE_MODE",
	"AUTO_MERGE",
	"CHERRY_PICK_HEAD",
	"REVERT_HEAD",
}

// CleanupState removes in-progress operation markers from the git dir
func (r *Repository) CleanupState() error {
	gitDir := r.GitDir()
	for _, name := range stateFiles {
		err := os.Remove(filepath.Join(gitDir, name))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clean up %s: %w", name, err)
		}
	}
	return nil
}

// MergeInProgress reports whether a merge is pending in the git dir
func (r *Repository) MergeInProgress() bool {
	_, err := os.Stat(filepath.Join(r.GitDir(), "MERGE_HEAD"))
	return err == nil
}
