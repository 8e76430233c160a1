package cli

import (
	"context"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/actions"
	"shipit.dev/shipit/internal/deps"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
)

// stepBuilder constructs one release step against a runtime context.
type stepBuilder func(ctx context.Context, rt *runtime.Context) engine.Step

// runSingleStep executes one standard step against the ambient state:
// flags plus the release state persisted by a previous inquire-versions run.
func runSingleStep(cmd *cobra.Command, opts *rootOptions, build stepBuilder) error {
	rt, err := buildContext(opts)
	if err != nil {
		return err
	}
	defer rt.Splog.Close()

	st, err := actions.LoadPersistedState(rt, opts.useDefaults(), opts.SkipTests)
	if err != nil {
		return err
	}

	step := build(cmd.Context(), rt)
	if _, err := engine.Run([]engine.Step{step}, st); err != nil {
		rt.Splog.Error("%v", err)
		return NewExitError(1)
	}

	return nil
}

func newChecksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "Verify the repository is clean and ready to release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.GitChecksStep(rt)
			})
		},
	}
}

func newSnapshotsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-snapshots",
		Short: "Check for unstable (snapshot) dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(ctx context.Context, rt *runtime.Context) engine.Step {
				checker := deps.NewManifestChecker(rt.RepoRoot, rt.Config.DependencyManifests, rt.Config.SnapshotSuffix)
				return actions.SnapshotCheckStep(ctx, rt, checker)
			})
		},
	}
}

func newInquireCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inquire-versions",
		Short: "Choose the release and next development versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.InquireVersionsStep(rt)
			})
		},
	}
}

func newSetReleaseVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-release-version",
		Short: "Write the release version into the version file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.SetReleaseVersionStep(rt)
			})
		},
	}
}

func newSetNextVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-next-version",
		Short: "Write the next development version into the version file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.SetNextVersionStep(rt)
			})
		},
	}
}

func newTestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the configured test command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(ctx context.Context, rt *runtime.Context) engine.Step {
				return actions.RunTestsStep(ctx, rt)
			})
		},
	}
}

func newCommitReleaseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commit-release-version",
		Short: "Commit the version file carrying the release version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.CommitReleaseVersionStep(rt)
			})
		},
	}
}

func newCommitNextCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commit-next-version",
		Short: "Commit the version file carrying the next development version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.CommitNextVersionStep(rt)
			})
		},
	}
}

func newTagCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tag-release",
		Short: "Tag the release commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.TagReleaseStep(rt)
			})
		},
	}
}

func newPushCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push-changes",
		Short: "Push the current branch and all tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingleStep(cmd, opts, func(_ context.Context, rt *runtime.Context) engine.Step {
				return actions.PushChangesStep(rt)
			})
		},
	}
}
