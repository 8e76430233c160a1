package actions

import (
	"context"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/deps"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
)

// DefaultPipeline returns the full release pipeline in its canonical order.
func DefaultPipeline(ctx context.Context, rt *runtime.Context) []engine.Step {
	checker := deps.NewManifestChecker(rt.RepoRoot, rt.Config.DependencyManifests, rt.Config.SnapshotSuffix)

	steps := []engine.Step{
		GitChecksStep(rt),
		SnapshotCheckStep(ctx, rt, checker),
		InquireVersionsStep(rt),
		SetReleaseVersionStep(rt),
		RunTestsStep(ctx, rt),
		CommitReleaseVersionStep(rt),
		TagReleaseStep(rt),
		SetNextVersionStep(rt),
		CommitNextVersionStep(rt),
		PushChangesStep(rt),
	}

	if rt.Config.PublishReleases {
		steps = append(steps, PublishReleaseStep(ctx, rt))
	}

	return steps
}

// LoadPersistedState builds the initial engine state for a single-step
// invocation, picking up versions chosen by a previous inquire-versions run.
func LoadPersistedState(rt *runtime.Context, useDefaults, skipTests bool) (engine.State, error) {
	st := engine.State{
		UseDefaults: useDefaults,
		SkipTests:   skipTests,
	}

	persisted, err := config.LoadReleaseState(rt.RepoRoot)
	if err != nil {
		return st, err
	}
	if persisted != nil {
		st = st.WithVersions(persisted.ReleaseVersion, persisted.NextVersion)
		st.ReleaseHash = persisted.ReleaseHash
	}

	return st, nil
}
