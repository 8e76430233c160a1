package actions

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
)

// RunTestsStep runs the configured test command and aborts the release on
// failure. A no-op when the state says to skip tests.
func RunTestsStep(ctx context.Context, rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "run-tests",
		Run: func(st engine.State) (engine.State, error) {
			if st.SkipTests {
				rt.Splog.Info("Skipping tests")
				return st, nil
			}

			command := rt.Config.TestCommand
			if len(command) == 0 {
				return st, fmt.Errorf("no test command configured")
			}

			rt.Splog.Info("Running %s", strings.Join(command, " "))
			cmd := exec.CommandContext(ctx, command[0], command[1:]...)
			cmd.Dir = rt.RepoRoot
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr

			if err := cmd.Run(); err != nil {
				return st, fmt.Errorf("tests failed: %w", err)
			}

			return st, nil
		},
	}
}
