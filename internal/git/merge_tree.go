package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
)

// MergeTreeResult is the outcome of a tree-level three-way merge
type MergeTreeResult struct {
	// Tree is the merged tree. With conflicts it contains conflict markers and must not be committed.
	Tree plumbing.Hash
	// Conflicts lists the conflicted paths, empty for a clean merge
	Conflicts []string
}

// Clean reports whether the merge produced no conflicts
func (m *MergeTreeResult) Clean() bool {
	return len(m.Conflicts) == 0
}

// MergeTrees three-way merges theirs into ours using their merge base.
// It writes the merged tree to the object database without touching the
// index, worktree or refs. Requires git 2.38 or newer.
func (r *Repository) MergeTrees(ctx context.Context, ours, theirs plumbing.Hash) (*MergeTreeResult, error) {
	out, err := r.Runner().RunRaw(ctx, "merge-tree", "--write-tree", "--name-only", "--no-messages", "--allow-unrelated-histories", ours.String(), theirs.String())

	conflicted := false
	if err != nil {
		var cmdErr *gderrors.GitCommandError
		// Exit status 1 means the merge completed with conflicts
		if !errors.As(err, &cmdErr) || cmdErr.ExitCode != 1 {
			return nil, fmt.Errorf("failed to merge trees: %w", err)
		}
		conflicted = true
	}

	lines := splitLines(out)
	if len(lines) == 0 {
		return nil, fmt.Errorf("merge-tree produced no tree")
	}
	tree := plumbing.NewHash(strings.TrimSpace(lines[0]))
	if tree.IsZero() {
		return nil, fmt.Errorf("merge-tree produced invalid tree id %q", lines[0])
	}

	result := &MergeTreeResult{Tree: tree}
	if conflicted {
		seen := make(map[string]bool)
		for _, line := range lines[1:] {
			path := strings.TrimSpace(line)
			if path == "" || seen[path] {
				continue
			}
			seen[path] = true
			result.Conflicts = append(result.Conflicts, path)
		}
		if len(result.Conflicts) == 0 {
			// Conflicts without a path (e.g. unrelated directory/file clashes)
			result.Conflicts = []string{"(unknown)"}
		}
	}
	return result, nil
}
