package actions

import (
	"context"
	"fmt"

	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/runtime"
)

// PublishReleaseStep creates a GitHub release for the pushed tag. When no
// GitHub client is configured the step logs an advisory and succeeds, so
// the default pipeline works without credentials; an already-published tag
// is likewise a no-op.
func PublishReleaseStep(ctx context.Context, rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "publish-release",
		Run: func(st engine.State) (engine.State, error) {
			vs, err := st.RequireVersions()
			if err != nil {
				return st, err
			}

			if rt.GitHub == nil {
				rt.Splog.Tip("No GitHub client configured; skipping release publication")
				return st, nil
			}

			tag := rt.Config.TagPrefix + vs.Release

			existing, err := rt.GitHub.GetReleaseByTag(ctx, tag)
			if err != nil {
				return st, err
			}
			if existing != nil {
				rt.Splog.Info("Release for %s already published: %s", tag, existing.HTMLURL)
				return st, nil
			}

			body := fmt.Sprintf("Release %s", vs.Release)
			if st.ReleaseHash != "" {
				body = fmt.Sprintf("Release %s (commit %s)", vs.Release, st.ReleaseHash)
			}

			release, err := rt.GitHub.CreateRelease(ctx, git.CreateReleaseOptions{
				TagName: tag,
				Name:    tag,
				Body:    body,
			})
			if err != nil {
				return st, err
			}
			rt.Splog.Success("Published release %s", release.HTMLURL)

			return st, nil
		},
	}
}
