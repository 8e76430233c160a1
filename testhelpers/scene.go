package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene: a temporary directory holding a Git
// repository with one initial commit, entered for the duration of the test.
type Scene struct {
	Dir  string
	Repo *GitRepo

	oldDir string
}

// SceneSetup is a function type for customizing a scene before the test runs.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene and changes into it. Cleanup is
// registered with t.Cleanup(); tests using a scene must not run in parallel
// because the working directory is process-wide.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "shipit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := repo.CommitFile("README.md", "# test\n", "initial commit"); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		os.Chdir(scene.oldDir)
		os.RemoveAll(scene.Dir)
	})

	return scene
}
