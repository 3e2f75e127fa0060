package integration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gitdesk.dev/gitdesk/testhelpers"
)

// =============================================================================
// Workspace Workflow Integration Tests
//
// These tests cover a working session: opening a repository, branching,
// committing, merging back and publishing to a remote.
// =============================================================================

func TestFeatureWorkflow(t *testing.T) {
	sh, url := NewTestShellWithRemote(t)
	repo := sh.Scene().Repo

	sh.Run(fmt.Sprintf("repo check '%s'", sh.Scene().Dir)).
		OutputContains("true")

	sh.Run("branch create feature").
		Run("branch checkout feature").
		OnBranch("feature")

	sh.WriteFile("feature.txt", "feature work\n").
		Run("status").
		OutputContains("A feature.txt").
		Run("stage feature.txt").
		Run("commit -m 'Add feature'").
		OutputContains("Committed")

	sh.Run("merge analyze feature main").
		OutputContains("fast_forward")

	sh.Run("branch checkout main").
		Run("merge run feature main").
		OutputContains("Fast-forwarded main to feature")
	testhelpers.ExpectRef(t, repo, "main", testhelpers.Must(repo.GetRevision("feature")))
	testhelpers.ExpectCleanWorktree(t, repo)

	sh.Run("push").
		ProgressContains("Completed: 100%")

	remoteMain, err := repo.RunGitCommandAndGetOutput("ls-remote", url, "refs/heads/main")
	require.NoError(t, err)
	require.Contains(t, remoteMain, testhelpers.Must(repo.GetRevision("main")))
}

func TestDivergedWorkflow(t *testing.T) {
	sh := NewTestShell(t)
	repo := sh.Scene().Repo

	sh.Run(fmt.Sprintf("repo use '%s'", sh.Scene().Dir))
	sh.Run("branch create topic").
		Run("branch checkout topic").
		WriteFile("topic.txt", "topic\n").
		Run("stage --all").
		Run("commit -m 'Topic work'").
		Run("branch checkout main").
		WriteFile("main.txt", "main\n").
		Run("stage main.txt").
		Run("commit -m 'Main work'")

	sh.Run("merge analyze topic main").
		OutputContains("normal_merge").
		Run("merge run topic main").
		OutputContains("Merged topic into main")

	parents := testhelpers.Must(repo.GetParents("main"))
	require.Len(t, parents, 2)
	testhelpers.ExpectCommits(t, repo, "main", []string{"merge branch 'topic' into 'main'"})

	sh.Run("merge analyze topic main").
		OutputContains("up_to_date")

	sh.Run("merge analyze topic main --json")
	require.Contains(t, sh.Output(), `"up_to_date"`)
}

func TestCloneWorkflow(t *testing.T) {
	sh, url := NewTestShellWithRemote(t)
	dest := sh.Scene().Path("copy")

	sh.Run(fmt.Sprintf("clone '%s' '%s'", url, dest)).
		OutputContains("Cloned into " + dest).
		ProgressContains("Downloading Objects: 100%")

	sh.Run("repo last").
		OutputContains(dest)

	sh.Run("log").
		OutputContains("initial")

	sh.RunExpectError("merge ff nope main")
}
