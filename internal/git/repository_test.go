package git_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/testhelpers"
)

func openScene(t *testing.T, setup testhelpers.SceneSetup) (*testhelpers.Scene, *git.Repository) {
	t.Helper()
	scene := testhelpers.NewScene(t, setup)
	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)
	return scene, repo
}

func TestOpenRepository(t *testing.T) {
	t.Run("opens the worktree root", func(t *testing.T) {
		scene, repo := openScene(t, testhelpers.BasicSceneSetup)
		require.Equal(t, scene.Dir, repo.Root())
		require.Equal(t, filepath.Join(scene.Dir, ".git"), repo.GitDir())
	})

	t.Run("does not search parent directories", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("nested/file.txt", "x"))

		_, err := git.OpenRepository(filepath.Join(scene.Dir, "nested"))
		require.Error(t, err)
	})

	t.Run("missing path fails", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		_, err := git.OpenRepository(scene.Path("does-not-exist"))
		require.Error(t, err)
	})
}

func TestIsRepository(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	require.True(t, git.IsRepository(scene.Dir))
	require.False(t, git.IsRepository(filepath.Dir(scene.Dir)))
	require.False(t, git.IsRepository(""))
}

func TestCurrentBranch(t *testing.T) {
	t.Run("named branch", func(t *testing.T) {
		_, repo := openScene(t, testhelpers.BasicSceneSetup)

		branch, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", branch)
		require.True(t, repo.IsCheckedOut("main"))
		require.False(t, repo.IsCheckedOut("other"))
	})

	t.Run("unborn branch still has a name", func(t *testing.T) {
		_, repo := openScene(t, nil)

		branch, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", branch)

		head, err := repo.HeadCommit()
		require.NoError(t, err)
		require.Nil(t, head)
	})

	t.Run("detached HEAD", func(t *testing.T) {
		scene, repo := openScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

		_, err := repo.CurrentBranch()
		require.ErrorIs(t, err, gderrors.ErrNotOnBranch)
	})
}

func TestBranchTip(t *testing.T) {
	scene, repo := openScene(t, testhelpers.BasicSceneSetup)

	tip, err := repo.BranchTip("main")
	require.NoError(t, err)
	require.Equal(t, testhelpers.Must(scene.Repo.GetRevision("main")), tip.String())

	_, err = repo.BranchTip("missing")
	require.ErrorIs(t, err, gderrors.ErrBranchNotFound)
}
