package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/testhelpers"
)

func TestStatus(t *testing.T) {
	t.Run("clean repository", func(t *testing.T) {
		_, repo := openScene(t, testhelpers.BasicSceneSetup)

		changes, err := repo.Status()
		require.NoError(t, err)
		require.Empty(t, changes)
	})

	t.Run("reports new, modified and deleted files", func(t *testing.T) {
		scene, repo := openScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CommitFile("keep.txt", "keep", "keep"); err != nil {
				return err
			}
			return s.Repo.CommitFile("gone.txt", "gone", "gone")
		})
		require.NoError(t, scene.Repo.WriteFile("keep.txt", "changed"))
		require.NoError(t, scene.Repo.RemoveFile("gone.txt"))
		require.NoError(t, scene.Repo.WriteFile("dir/new.txt", "new"))

		changes, err := repo.Status()
		require.NoError(t, err)
		require.Equal(t, []git.FileChange{
			{Path: "dir/new.txt", Status: git.StatusNew},
			{Path: "gone.txt", Status: git.StatusDeleted},
			{Path: "keep.txt", Status: git.StatusModified},
		}, changes)
	})

	t.Run("staged-only changes are flagged", func(t *testing.T) {
		scene, repo := openScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("staged", "added", false))

		changes, err := repo.Status()
		require.NoError(t, err)
		require.Equal(t, []git.FileChange{
			{Path: testhelpers.FileName("added"), Status: git.StatusNew, Staged: true},
		}, changes)
	})
}

func TestCommitChanges(t *testing.T) {
	t.Run("root commit compares against the empty tree", func(t *testing.T) {
		_, repo := openScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("a.txt", "a", "root")
		})

		changes, err := repo.CommitChanges("HEAD")
		require.NoError(t, err)
		require.Equal(t, []git.FileChange{{Path: "a.txt", Status: git.StatusNew}}, changes)
	})

	t.Run("compares with the first parent", func(t *testing.T) {
		scene, repo := openScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CommitFile("a.txt", "a", "root"); err != nil {
				return err
			}
			return s.Repo.CommitFile("b.txt", "b", "second")
		})
		require.NoError(t, scene.Repo.WriteFile("a.txt", "a2"))
		require.NoError(t, scene.Repo.RunGitCommand("rm", "-q", "b.txt"))
		require.NoError(t, scene.Repo.RunGitCommand("add", "a.txt"))
		require.NoError(t, scene.Repo.RunGitCommand("commit", "-m", "third"))

		changes, err := repo.CommitChanges("HEAD")
		require.NoError(t, err)
		require.Equal(t, []git.FileChange{
			{Path: "a.txt", Status: git.StatusModified},
			{Path: "b.txt", Status: git.StatusDeleted},
		}, changes)

		sha := testhelpers.Must(scene.Repo.GetRevision("HEAD~1"))
		changes, err = repo.CommitChanges(sha)
		require.NoError(t, err)
		require.Equal(t, []git.FileChange{{Path: "b.txt", Status: git.StatusNew}}, changes)
	})

	t.Run("unknown revision", func(t *testing.T) {
		_, repo := openScene(t, testhelpers.BasicSceneSetup)
		_, err := repo.CommitChanges("0000000000000000000000000000000000000001")
		require.Error(t, err)
	})
}
