package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene is a temporary directory holding a fresh repository. The config
// directory is redirected into the scene so tests never touch the user's settings.
type Scene struct {
	Dir       string
	ConfigDir string
	Repo      *GitRepo
}

// SceneSetup prepares a scene after the repository is created
type SceneSetup func(*Scene) error

// NewScene creates a scene and removes it when the test finishes.
// Set DEBUG to keep the directory around.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gitdesk-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// Resolve symlinks (macOS /var -> /private/var) so paths compare equal
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}
	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(tmpDir)
		}
	})

	repoDir := filepath.Join(tmpDir, "repo")
	repo, err := NewGitRepo(repoDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:       repoDir,
		ConfigDir: filepath.Join(tmpDir, "config"),
		Repo:      repo,
	}
	t.Setenv("GITDESK_CONFIG_DIR", scene.ConfigDir)

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// Path returns a path inside the scene's temp directory, outside the repository
func (s *Scene) Path(name string) string {
	return filepath.Join(filepath.Dir(s.Dir), name)
}

// BasicSceneSetup creates a single commit on main
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// DivergedSceneSetup creates main and feature branches that each have a
// commit past their common base. main stays checked out.
func DivergedSceneSetup(scene *Scene) error {
	if err := scene.Repo.CreateChangeAndCommit("base", "base"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("feature"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("feature change", "feature"); err != nil {
		return err
	}
	if err := scene.Repo.CheckoutBranch("main"); err != nil {
		return err
	}
	return scene.Repo.CreateChangeAndCommit("main change", "main")
}

// AheadSceneSetup creates a feature branch one commit ahead of main.
// main stays checked out.
func AheadSceneSetup(scene *Scene) error {
	if err := scene.Repo.CreateChangeAndCommit("base", "base"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("feature"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("feature change", "feature"); err != nil {
		return err
	}
	return scene.Repo.CheckoutBranch("main")
}
