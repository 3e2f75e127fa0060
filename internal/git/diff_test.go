package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/testhelpers"
)

func TestFileDiff(t *testing.T) {
	t.Run("worktree against HEAD", func(t *testing.T) {
		scene, repo := openScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("a.txt", "old\n", "add a")
		})
		require.NoError(t, scene.Repo.WriteFile("a.txt", "new\n"))

		state, err := repo.FileDiff("a.txt")
		require.NoError(t, err)
		require.Equal(t, &git.DiffState{OldContent: "old\n", NewContent: "new\n"}, state)
	})

	t.Run("untracked file has no old side", func(t *testing.T) {
		scene, repo := openScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("fresh.txt", "hello"))

		state, err := repo.FileDiff("fresh.txt")
		require.NoError(t, err)
		require.Equal(t, "", state.OldContent)
		require.Equal(t, "hello", state.NewContent)
	})

	t.Run("deleted file has no new side", func(t *testing.T) {
		scene, repo := openScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("a.txt", "bye", "add a")
		})
		require.NoError(t, scene.Repo.RemoveFile("a.txt"))

		state, err := repo.FileDiff("a.txt")
		require.NoError(t, err)
		require.Equal(t, "bye", state.OldContent)
		require.Equal(t, "", state.NewContent)
	})

	t.Run("unborn branch", func(t *testing.T) {
		scene, repo := openScene(t, nil)
		require.NoError(t, scene.Repo.WriteFile("a.txt", "a"))

		state, err := repo.FileDiff("a.txt")
		require.NoError(t, err)
		require.Equal(t, "", state.OldContent)
		require.Equal(t, "a", state.NewContent)
	})

	t.Run("binary content is blanked", func(t *testing.T) {
		_, repo := openScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("bin.dat", "a\x00b", "binary")
		})

		state, err := repo.FileDiff("bin.dat")
		require.NoError(t, err)
		require.Equal(t, "", state.OldContent)
	})
}

func TestCommitFileDiff(t *testing.T) {
	scene, repo := openScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CommitFile("a.txt", "one\n", "first"); err != nil {
			return err
		}
		return s.Repo.CommitFile("a.txt", "two\n", "second")
	})

	state, err := repo.CommitFileDiff("HEAD", "a.txt")
	require.NoError(t, err)
	require.Equal(t, &git.DiffState{OldContent: "one\n", NewContent: "two\n"}, state)

	root := testhelpers.Must(scene.Repo.GetRevision("HEAD~1"))
	state, err = repo.CommitFileDiff(root, "a.txt")
	require.NoError(t, err)
	require.Equal(t, &git.DiffState{OldContent: "", NewContent: "one\n"}, state)
}
