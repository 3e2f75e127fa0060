package testhelpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	
	"gitdesk.dev/gitdesk/testhelpers"
)

// TestExampleUsage demonstrates how to use the testhelpers package.
// This test shows the basic pattern for using scenes.
func TestExampleUsage(t *testing.T) {
	// Create a basic scene with a single commit
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	// Verify initial state
	branches, err := scene.Repo.RunGitCommandAndGetOutput("branch", "--list")
	require.NoError(t, err)
	require.Contains(t, branches, "main")
	require.Equal(t, scene.ConfigDir, os.Getenv("GITDESK_CONFIG_DIR"))
}

// TestGitRepoBasicOperations tests basic Git repository operations.
func TestGitRepoBasicOperations(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	// Test creating a commit
	err := scene.Repo.CreateChangeAndCommit("test content", "test")
	require.NoError(t, err)

	// Test getting current branch
	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	// Test listing commits
	messages, err := scene.Repo.ListCurrentBranchCommitMessages()
	require.NoError(t, err)
	require.Greater(t, len(messages), 0)
}

// TestSceneWithSetup demonstrates using a custom setup function.
func TestSceneWithSetup(t *testing.T) {
	customSetup := func(scene *testhelpers.Scene) error {
		// Create multiple commits
		if err := scene.Repo.CreateChangeAndCommit("commit 1", "1"); err != nil {
			return err
		}
		if err := scene.Repo.CreateChangeAndCommit("commit 2", "2"); err != nil {
			return err
		}
		return nil
	}

	scene := testhelpers.NewScene(t, customSetup)

	// Verify commits were created
	messages, err := scene.Repo.ListCurrentBranchCommitMessages()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(messages), 2)
}

// TestExpectBranches demonstrates the branch assertion helper.
func TestExpectBranches(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	// Need at least one commit before creating branches
	err := scene.Repo.CreateChangeAndCommit("initial", "init")
	require.NoError(t, err)

	// Create branches manually
	err = scene.Repo.CreateAndCheckoutBranch("feature")
	require.NoError(t, err)
	err = scene.Repo.CreateAndCheckoutBranch("bugfix")
	require.NoError(t, err)
	err = scene.Repo.CheckoutBranch("main")
	require.NoError(t, err)

	// Assert branches exist
	testhelpers.ExpectBranches(t, scene.Repo, []string{"bugfix", "feature", "main"})
}

// TestDivergedSceneSetup checks the shape the merge tests rely on.
func TestDivergedSceneSetup(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.DivergedSceneSetup)

	main := testhelpers.Must(scene.Repo.GetRevision("main"))
	feature := testhelpers.Must(scene.Repo.GetRevision("feature"))
	require.False(t, scene.Repo.IsAncestor(main, feature))
	require.False(t, scene.Repo.IsAncestor(feature, main))

	count, err := scene.Repo.GetCommitCount("main", "feature")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// TestBareRemote demonstrates pushing to a scene-local remote.
func TestBareRemote(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	url, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	head, err := scene.Repo.RunGitCommandAndGetOutput("--git-dir", url, "symbolic-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "refs/heads/main", head)
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))

	clone, err := testhelpers.CloneGitRepo(url, scene.Path("clone"))
	require.NoError(t, err)
	testhelpers.ExpectRef(t, clone, "HEAD", testhelpers.Must(scene.Repo.GetRevision("main")))
}
