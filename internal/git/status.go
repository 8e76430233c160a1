package git

import (
	"context"
	"fmt"
	"strings"
)

// Status returns the porcelain status of the working tree.
func (r *CommandRunner) Status() (string, error) {
	output, err := r.Run(context.Background(), "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	return output, nil
}

// IsDirty reports whether the working tree has uncommitted changes,
// including untracked files.
func (r *CommandRunner) IsDirty() (bool, error) {
	status, err := r.Status()
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(status) != "", nil
}

// FileStatus returns the porcelain status restricted to a single path,
// relative to the runner's working directory. An empty result means the
// path matches the last commit.
func (r *CommandRunner) FileStatus(path string) (string, error) {
	output, err := r.Run(context.Background(), "status", "--porcelain", "--", path)
	if err != nil {
		return "", fmt.Errorf("failed to get status of %s: %w", path, err)
	}
	return output, nil
}

// CurrentHash returns the full hash of the current HEAD commit.
func (r *CommandRunner) CurrentHash() (string, error) {
	output, err := r.Run(context.Background(), "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current commit: %w", err)
	}
	return output, nil
}

// CurrentBranch returns the name of the currently checked out branch.
func (r *CommandRunner) CurrentBranch() (string, error) {
	output, err := r.Run(context.Background(), "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return output, nil
}
