package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitdesk.dev/gitdesk/internal/actions"
	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/testhelpers"
	"gitdesk.dev/gitdesk/testhelpers/scenario"
)

func TestOpenRepoResolution(t *testing.T) {
	t.Run("no explicit or remembered path", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := actions.StatusAction(s.Context, actions.StatusOptions{})
		require.ErrorIs(t, err, gderrors.ErrNoRepositoryAvailable)
	})

	t.Run("falls back to the remembered path", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup).WithActiveRepo()
		s.Context.RepoPath = s.Scene.Path("missing")

		changes, err := actions.StatusAction(s.Context, actions.StatusOptions{})
		require.NoError(t, err)
		require.Empty(t, changes)
	})
}

func TestStatusAndDiffActions(t *testing.T) {
	s := scenario.NewScenario(t, testhelpers.BasicSceneSetup).WithExplicitRepo()
	require.NoError(t, s.Scene.Repo.WriteFile(testhelpers.FileName("1"), "changed"))
	require.NoError(t, s.Scene.Repo.WriteFile("new.txt", "hello"))

	changes, err := actions.StatusAction(s.Context, actions.StatusOptions{})
	require.NoError(t, err)
	require.ElementsMatch(t, []git.FileChange{
		{Path: testhelpers.FileName("1"), Status: git.StatusModified},
		{Path: "new.txt", Status: git.StatusNew},
	}, changes)

	diff, err := actions.DiffAction(s.Context, actions.DiffOptions{Path: testhelpers.FileName("1")})
	require.NoError(t, err)
	require.Equal(t, "1", diff.OldContent)
	require.Equal(t, "changed", diff.NewContent)

	head := testhelpers.Must(s.Scene.Repo.GetRevision("HEAD"))
	changes, err = actions.StatusAction(s.Context, actions.StatusOptions{Commit: head})
	require.NoError(t, err)
	require.Equal(t, []git.FileChange{{Path: testhelpers.FileName("1"), Status: git.StatusNew}}, changes)

	diff, err = actions.DiffAction(s.Context, actions.DiffOptions{Path: testhelpers.FileName("1"), Commit: head})
	require.NoError(t, err)
	require.Equal(t, "", diff.OldContent)
	require.Equal(t, "1", diff.NewContent)
}

func TestLogAction(t *testing.T) {
	s := scenario.NewScenario(t, testhelpers.BasicSceneSetup).WithExplicitRepo()
	s.CommitChange("2", "second").CommitChange("3", "third")

	commits, err := actions.LogAction(s.Context, actions.LogOptions{})
	require.NoError(t, err)
	require.Len(t, commits, 3)
	require.Equal(t, "third\n", commits[0].Message)

	s.Context.Config.HistoryPageSize = 2
	commits, err = actions.LogAction(s.Context, actions.LogOptions{})
	require.NoError(t, err)
	require.Len(t, commits, 2)

	commits, err = actions.LogAction(s.Context, actions.LogOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, commits, 1)
}
