// Package testhelpers provides testing utilities for the shipit CLI,
// including a scene system and Git repository helpers.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init', isolated from the user's global configuration.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git",
		"-c", "init.defaultBranch=main",
		"-c", "core.autocrlf=false",
		"-c", "core.fileMode=false",
		"init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Identity lives in the repo config so commits work without a
	// global gitconfig.
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "commit.gpgsign", "false"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "tag.gpgsign", "false"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGit runs a git command in the repository and discards the output.
func (r *GitRepo) RunGit(args ...string) error {
	output, err := r.RunGitOutput(args...)
	if err != nil {
		return fmt.Errorf("git %v failed: %s: %w", args, output, err)
	}
	return nil
}

// RunGitOutput runs a git command in the repository and returns its combined output.
func (r *GitRepo) RunGitOutput(args ...string) (string, error) {
	fullArgs := append([]string{"-C", r.Dir}, args...)
	cmd := exec.Command("git", fullArgs...)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

// CommitFile writes a file and commits it.
func (r *GitRepo) CommitFile(name, content, message string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	if err := r.RunGit("add", "--", name); err != nil {
		return err
	}
	return r.RunGit("commit", "-m", message)
}

// WriteFile writes a file without committing it.
func (r *GitRepo) WriteFile(name, content string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// CurrentHash returns the hash of HEAD.
func (r *GitRepo) CurrentHash() (string, error) {
	return r.RunGitOutput("rev-parse", "HEAD")
}

// HasTag reports whether the given tag exists.
func (r *GitRepo) HasTag(name string) (bool, error) {
	output, err := r.RunGitOutput("tag", "--list", name)
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// CommitMessages returns the commit subjects, newest first.
func (r *GitRepo) CommitMessages() ([]string, error) {
	output, err := r.RunGitOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// SetUpstream creates a bare clone next to the repository and configures
// it as the upstream of the current branch.
func (r *GitRepo) SetUpstream(bareDir string) error {
	cmd := exec.Command("git", "clone", "--bare", r.Dir, bareDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to create bare remote: %s: %w", output, err)
	}
	if err := r.RunGit("remote", "add", "origin", bareDir); err != nil {
		return err
	}
	return r.RunGit("push", "-u", "origin", "main")
}
