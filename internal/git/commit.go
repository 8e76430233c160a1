package git

import (
	"context"
	"fmt"
)

// StageFile stages a single path, relative to the runner's working directory.
func (r *CommandRunner) StageFile(path string) error {
	_, err := r.Run(context.Background(), "add", "--", path)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// Commit creates a commit with the given message. The commit is
// non-interactive; staged content only.
func (r *CommandRunner) Commit(message string) error {
	_, err := r.Run(context.Background(), "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
