package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// StageFile adds a single path to the index. A deleted file is removed from the index.
func (r *Repository) StageFile(path string) error {
	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, err := wt.Add(filepath.ToSlash(path)); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// StageAll stages all changes including untracked files and deletions
func (r *Repository) StageAll() error {
	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// UnstageFile resets the index entry for path to its HEAD version.
// On an unborn branch, or for a path absent from HEAD, the entry is removed.
func (r *Repository) UnstageFile(path string) error {
	return r.unstage([]string{filepath.ToSlash(path)})
}

// UnstageAll resets every staged path to its HEAD version
func (r *Repository) UnstageAll() error {
	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	var paths []string
	for path, fs := range status {
		if fs.Staging != gogit.Unmodified && fs.Staging != gogit.Untracked {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	return r.unstage(paths)
}

func (r *Repository) unstage(paths []string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	var tree *object.Tree
	if head != nil {
		if tree, err = head.Tree(); err != nil {
			return fmt.Errorf("failed to get HEAD tree: %w", err)
		}
	}

	idx, err := r.Storer.Index()
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	for _, path := range paths {
		var file *object.File
		if tree != nil {
			file, err = tree.File(path)
			if err != nil && !errors.Is(err, object.ErrFileNotFound) {
				return fmt.Errorf("failed to read %s from HEAD: %w", path, err)
			}
		}

		if file == nil {
			if _, err := idx.Remove(path); err != nil && !errors.Is(err, index.ErrEntryNotFound) {
				return fmt.Errorf("failed to unstage %s: %w", path, err)
			}
			continue
		}

		entry, err := idx.Entry(path)
		if errors.Is(err, index.ErrEntryNotFound) {
			entry = idx.Add(path)
		} else if err != nil {
			return fmt.Errorf("failed to unstage %s: %w", path, err)
		}
		entry.Hash = file.Hash
		entry.Mode = file.Mode
		entry.Size = uint32(file.Size)
		// Clear cached stat data so status rehashes the worktree file
		entry.ModifiedAt = time.Time{}
		entry.CreatedAt = time.Time{}
	}

	if err := r.Storer.SetIndex(idx); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}
