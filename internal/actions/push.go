package actions

import (
	"fmt"

	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
)

// PushChangesStep pushes the current branch and all tags after operator
// confirmation. A missing upstream is advisory, not fatal: the release
// already exists locally and can be pushed by hand.
func PushChangesStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "push-changes",
		Run: func(st engine.State) (engine.State, error) {
			hasUpstream, err := rt.Git.HasUpstream()
			if err != nil {
				return st, fmt.Errorf("failed to check upstream: %w", err)
			}
			if !hasUpstream {
				rt.Splog.Tip("No upstream configured; not pushing. Push the branch and tags manually when ready.")
				return st, nil
			}

			ok, err := rt.Prompt.Confirm("Push changes to the remote?", true)
			if err != nil {
				return st, err
			}
			if !ok {
				rt.Splog.Tip("Push skipped; remember to push the branch and tags yourself.")
				return st, nil
			}

			if err := rt.Git.Push(); err != nil {
				return st, err
			}
			if err := rt.Git.PushTags(); err != nil {
				return st, err
			}
			rt.Splog.Success("Pushed branch and tags")

			return st, nil
		},
	}
}
