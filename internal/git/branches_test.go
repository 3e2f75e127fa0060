package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/testhelpers"
)

func TestListBranches(t *testing.T) {
	t.Run("local then remote, without remote HEAD", func(t *testing.T) {
		_, repo := openScene(t, func(s *testhelpers.Scene) error {
			if err := testhelpers.BasicSceneSetup(s); err != nil {
				return err
			}
			if err := s.Repo.CreateBranch("feature"); err != nil {
				return err
			}
			if _, err := s.Repo.CreateBareRemote("origin"); err != nil {
				return err
			}
			if err := s.Repo.PushBranch("origin", "main"); err != nil {
				return err
			}
			return s.Repo.RunGitCommand("remote", "set-head", "origin", "main")
		})
		branches, err := repo.ListBranches()
		require.NoError(t, err)
		require.Equal(t, []git.BranchInfo{
			{Name: "feature", Kind: git.BranchLocal},
			{Name: "main", Kind: git.BranchLocal, IsHead: true},
			{Name: "origin/main", Kind: git.BranchRemote},
		}, branches)

		remotes, err := repo.ListRemoteBranches()
		require.NoError(t, err)
		require.Equal(t, []string{"origin/main"}, remotes)
	})

	t.Run("detached HEAD marks no branch", func(t *testing.T) {
		scene, repo := openScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

		branches, err := repo.ListBranches()
		require.NoError(t, err)
		require.Len(t, branches, 1)
		require.False(t, branches[0].IsHead)
	})

	t.Run("no remotes gives an empty list", func(t *testing.T) {
		_, repo := openScene(t, testhelpers.BasicSceneSetup)

		remotes, err := repo.ListRemoteBranches()
		require.NoError(t, err)
		require.Empty(t, remotes)
	})
}

func TestCreateBranch(t *testing.T) {
	t.Run("creates at HEAD without checkout", func(t *testing.T) {
		scene, repo := openScene(t, testhelpers.BasicSceneSetup)

		require.NoError(t, repo.CreateBranch("feature"))
		testhelpers.ExpectBranches(t, scene.Repo, []string{"feature", "main"})
		testhelpers.ExpectRef(t, scene.Repo, "feature", testhelpers.Must(scene.Repo.GetRevision("main")))
		require.Equal(t, "main", testhelpers.Must(scene.Repo.CurrentBranchName()))
	})

	t.Run("rejects existing and invalid names", func(t *testing.T) {
		_, repo := openScene(t, testhelpers.BasicSceneSetup)

		require.Error(t, repo.CreateBranch("main"))
		require.Error(t, repo.CreateBranch("bad..name"))
	})

	t.Run("fails on an unborn branch", func(t *testing.T) {
		_, repo := openScene(t, nil)
		require.Error(t, repo.CreateBranch("feature"))
	})
}

func TestCheckoutBranch(t *testing.T) {
	t.Run("switches branch and worktree", func(t *testing.T) {
		scene, repo := openScene(t, testhelpers.AheadSceneSetup)

		require.NoError(t, repo.CheckoutBranch("feature"))
		require.Equal(t, "feature", testhelpers.Must(scene.Repo.CurrentBranchName()))
		content, err := scene.Repo.ReadFile(testhelpers.FileName("feature"))
		require.NoError(t, err)
		require.Equal(t, "feature change", content)
	})

	t.Run("missing branch", func(t *testing.T) {
		_, repo := openScene(t, testhelpers.BasicSceneSetup)
		require.ErrorIs(t, repo.CheckoutBranch("nope"), gderrors.ErrBranchNotFound)
	})
}
