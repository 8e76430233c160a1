package actions

import (
	"path/filepath"

	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/versionfile"
)

// SetReleaseVersionStep rewrites the version file with the release version.
func SetReleaseVersionStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "set-release-version",
		Run: func(st engine.State) (engine.State, error) {
			vs, err := st.RequireVersions()
			if err != nil {
				return st, err
			}
			return st, writeVersion(rt, vs.Release)
		},
	}
}

// SetNextVersionStep rewrites the version file with the next development version.
func SetNextVersionStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "set-next-version",
		Run: func(st engine.State) (engine.State, error) {
			vs, err := st.RequireVersions()
			if err != nil {
				return st, err
			}
			return st, writeVersion(rt, vs.Next)
		},
	}
}

func writeVersion(rt *runtime.Context, ver string) error {
	path := filepath.Join(rt.RepoRoot, rt.Config.VersionFile)
	if err := versionfile.Write(path, rt.Config.VersionDeclaration, ver); err != nil {
		return err
	}
	rt.Splog.Info("Set version to %s", ver)
	return nil
}
