package git

import (
	"context"
	"fmt"
)

// Remote returns the remote tracked by the current branch, falling back
// to "origin" when none is configured.
func (r *CommandRunner) Remote() string {
	branch, err := r.CurrentBranch()
	if err == nil {
		remote, err := r.Run(context.Background(), "config", "--get", fmt.Sprintf("branch.%s.remote", branch))
		if err == nil && remote != "" {
			return remote
		}
	}
	return "origin"
}

// RemoteURL returns the fetch URL of the given remote.
func (r *CommandRunner) RemoteURL(remote string) (string, error) {
	url, err := r.Run(context.Background(), "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("failed to get URL of remote %s: %w", remote, err)
	}
	return url, nil
}

// HasUpstream reports whether the current branch has a configured
// upstream tracking branch.
func (r *CommandRunner) HasUpstream() (bool, error) {
	_, err := r.Run(context.Background(), "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		// rev-parse exits non-zero when no upstream is configured;
		// that is an answer, not a failure.
		return false, nil
	}
	return true, nil
}

// Push pushes the current branch to its upstream.
func (r *CommandRunner) Push() error {
	_, err := r.Run(context.Background(), "push")
	if err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}

// PushTags pushes all local tags to the remote of the current branch.
func (r *CommandRunner) PushTags() error {
	_, err := r.Run(context.Background(), "push", "--tags")
	if err != nil {
		return fmt.Errorf("failed to push tags: %w", err)
	}
	return nil
}
