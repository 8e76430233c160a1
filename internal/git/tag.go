package git

import (
	"context"
	"fmt"
)

// TagExists reports whether a tag with the given name exists.
func (r *CommandRunner) TagExists(name string) (bool, error) {
	output, err := r.Run(context.Background(), "tag", "--list", name)
	if err != nil {
		return false, fmt.Errorf("failed to list tags: %w", err)
	}
	return output != "", nil
}

// CreateTag creates an annotated tag at HEAD. When force is true an
// existing tag with the same name is overwritten.
func (r *CommandRunner) CreateTag(name string, comment string, force bool) error {
	args := []string{"tag", "-a", "-m", comment}
	if force {
		args = append(args, "-f")
	}
	args = append(args, name)

	_, err := r.Run(context.Background(), args...)
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}
