package git

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// DiffState holds both sides of a file for side-by-side display.
// A side that is missing, binary or not UTF-8 is empty.
type DiffState struct {
	NewContent string `json:"new_content"`
	OldContent string `json:"old_content"`
}

// FileDiff compares the worktree copy of path with its HEAD version
func (r *Repository) FileDiff(path string) (*DiffState, error) {
	state := &DiffState{}

	if data, err := os.ReadFile(filepath.Join(r.path, filepath.FromSlash(path))); err == nil && utf8.Valid(data) {
		state.NewContent = string(data)
	}

	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	state.OldContent = fileContent(head, path)
	return state, nil
}

// CommitFileDiff compares path in a commit with its first parent
func (r *Repository) CommitFileDiff(rev, path string) (*DiffState, error) {
	commit, err := r.ResolveCommit(rev)
	if err != nil {
		return nil, err
	}

	state := &DiffState{NewContent: fileContent(commit, path)}
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, err
		}
		state.OldContent = fileContent(parent, path)
	}
	return state, nil
}

func fileContent(commit *object.Commit, path string) string {
	if commit == nil {
		return ""
	}
	file, err := commit.File(filepath.ToSlash(path))
	if err != nil {
		return ""
	}
	if binary, err := file.IsBinary(); err != nil || binary {
		return ""
	}
	content, err := file.Contents()
	if err != nil || !utf8.ValidString(content) {
		return ""
	}
	return content
}
