// Package testhelpers provides testing utilities for gitdesk, including a
// scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"os/exec"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must panics if err is not nil, otherwise returns the value.
// Useful for test setup where errors are not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir, "for-each-ref", "refs/heads/", "--format=%(refname:short)")
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list branches")

	branches := splitLines(string(output))
	sort.Strings(branches)
	expected = append([]string(nil), expected...)
	sort.Strings(expected)
	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectCommits asserts that the newest commit subjects on branch match expected
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir, "log", "--format=%s", branch)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	commits := splitLines(string(output))
	if len(commits) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(commits))
		return
	}
	require.Equal(t, expected, commits[:len(expected)], "Commits do not match")
}

// ExpectRef asserts that a revision resolves to sha
func ExpectRef(t *testing.T, repo *GitRepo, rev, sha string) {
	t.Helper()

	actual, err := repo.GetRevision(rev)
	require.NoError(t, err)
	require.Equal(t, sha, actual, "%s points at the wrong commit", rev)
}

// ExpectCleanWorktree asserts that git status reports nothing
func ExpectCleanWorktree(t *testing.T, repo *GitRepo) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("status", "--porcelain")
	require.NoError(t, err)
	require.Empty(t, strings.TrimSpace(output), "worktree is not clean")
}
