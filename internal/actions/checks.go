package actions

import (
	"fmt"

	"shipit.dev/shipit/internal/engine"
	shiperrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/runtime"
)

// GitChecksStep verifies the release preconditions: the working directory
// is inside a git repository and the working tree is clean.
func GitChecksStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "git-checks",
		Run: func(st engine.State) (engine.State, error) {
			if !rt.Git.IsRepository() {
				return st, shiperrors.ErrNotARepository
			}

			dirty, err := rt.Git.IsDirty()
			if err != nil {
				return st, fmt.Errorf("failed to check working tree: %w", err)
			}
			if dirty {
				status, statusErr := rt.Git.Status()
				if statusErr == nil && status != "" {
					rt.Splog.Info("%s", status)
				}
				return st, shiperrors.ErrDirtyWorkTree
			}

			hash, err := rt.Git.CurrentHash()
			if err != nil {
				return st, fmt.Errorf("failed to resolve HEAD: %w", err)
			}
			rt.Splog.Info("Starting release from commit %s", hash)

			return st, nil
		},
	}
}
