package actions

import (
	"fmt"
	"strings"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
)

// CommitReleaseVersionStep commits the version file carrying the release
// version and records the resulting commit hash in the release state.
func CommitReleaseVersionStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "commit-release-version",
		Run: func(st engine.State) (engine.State, error) {
			vs, err := st.RequireVersions()
			if err != nil {
				return st, err
			}

			committed, err := commitVersionFile(rt, fmt.Sprintf(rt.Config.ReleaseCommitMessage, vs.Release))
			if err != nil {
				return st, err
			}
			if !committed {
				return st, nil
			}

			hash, err := rt.Git.CurrentHash()
			if err != nil {
				return st, fmt.Errorf("failed to resolve release commit: %w", err)
			}
			st.ReleaseHash = hash

			if err := config.SaveReleaseState(rt.RepoRoot, &config.ReleaseState{
				ReleaseVersion: vs.Release,
				NextVersion:    vs.Next,
				ReleaseHash:    hash,
			}); err != nil {
				return st, err
			}

			return st, nil
		},
	}
}

// CommitNextVersionStep commits the version file carrying the next
// development version.
func CommitNextVersionStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "commit-next-version",
		Run: func(st engine.State) (engine.State, error) {
			vs, err := st.RequireVersions()
			if err != nil {
				return st, err
			}

			_, err = commitVersionFile(rt, fmt.Sprintf(rt.Config.NextCommitMessage, vs.Next))
			return st, err
		},
	}
}

// commitVersionFile stages the version file and commits it. When staging
// produces no change against the last commit the step is a safe no-op;
// re-running an already-applied commit step must not fail.
func commitVersionFile(rt *runtime.Context, message string) (bool, error) {
	path := rt.Config.VersionFile

	if err := rt.Git.StageFile(path); err != nil {
		return false, err
	}

	status, err := rt.Git.FileStatus(path)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(status) == "" {
		rt.Splog.Info("No changes to %s; nothing to commit", path)
		return false, nil
	}

	if err := rt.Git.Commit(message); err != nil {
		return false, err
	}
	rt.Splog.Info("Committed: %s", message)

	return true, nil
}
