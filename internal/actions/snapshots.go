package actions

import (
	"context"
	"fmt"

	"shipit.dev/shipit/internal/deps"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
)

// SnapshotCheckStep aggregates the project's unstable dependencies and
// refuses to release on top of them without explicit operator consent.
// In non-interactive mode any unstable dependency is fatal.
func SnapshotCheckStep(ctx context.Context, rt *runtime.Context, checker deps.Checker) engine.Step {
	return engine.Step{
		Name: "check-snapshot-dependencies",
		Run: func(st engine.State) (engine.State, error) {
			unstable, err := checker.Unstable(ctx)
			if err != nil {
				return st, fmt.Errorf("failed to check dependencies: %w", err)
			}

			if len(unstable) == 0 {
				rt.Splog.Debug("No snapshot dependencies found")
				return st, nil
			}

			rt.Splog.Warn("Snapshot dependencies detected:")
			for _, dep := range unstable {
				rt.Splog.Info("  %s", dep)
			}

			if st.UseDefaults {
				return st, fmt.Errorf("snapshot dependencies detected; resolve them or run interactively")
			}

			ok, err := rt.Prompt.Confirm("Continue the release with snapshot dependencies?", false)
			if err != nil {
				return st, err
			}
			if !ok {
				return st, fmt.Errorf("aborted due to snapshot dependencies")
			}

			return st, nil
		},
	}
}
