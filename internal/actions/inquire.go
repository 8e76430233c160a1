package actions

import (
	"fmt"
	"path/filepath"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/version"
	"shipit.dev/shipit/internal/versionfile"
)

// InquireVersionsStep computes the proposed release and next development
// versions from the version file and, in interactive mode, lets the
// operator override them. Malformed operator input is a fatal abort, not a
// re-prompt. The chosen pair is stored in the state and persisted so that
// later single-step invocations can pick it up.
func InquireVersionsStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "inquire-versions",
		Run: func(st engine.State) (engine.State, error) {
			path := filepath.Join(rt.RepoRoot, rt.Config.VersionFile)
			raw, err := versionfile.Read(path, rt.Config.VersionDeclaration)
			if err != nil {
				return st, fmt.Errorf("cannot determine current version: %w", err)
			}

			current, err := version.Parse(raw)
			if err != nil {
				return st, err
			}

			release := version.ProposeRelease(current)
			next := version.ProposeNext(release, rt.Config.SnapshotSuffix)

			if !st.UseDefaults {
				answer, err := rt.Prompt.Ask("Release version", release.String())
				if err != nil {
					return st, err
				}
				release, err = version.Parse(answer)
				if err != nil {
					return st, err
				}

				next = version.ProposeNext(release, rt.Config.SnapshotSuffix)
				answer, err = rt.Prompt.Ask("Next version", next.String())
				if err != nil {
					return st, err
				}
				next, err = version.Parse(answer)
				if err != nil {
					return st, err
				}
			}

			st = st.WithVersions(release.String(), next.String())
			rt.Splog.Info("Releasing %s, next development version %s", release, next)

			if err := config.SaveReleaseState(rt.RepoRoot, &config.ReleaseState{
				ReleaseVersion: release.String(),
				NextVersion:    next.String(),
			}); err != nil {
				return st, err
			}

			return st, nil
		},
	}
}
