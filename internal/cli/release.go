package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/actions"
	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/git"
)

func newReleaseCmd(opts *rootOptions) *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Run the full release pipeline",
		Long: `Run the full release pipeline: git checks, snapshot dependency
check, version inquiry, version write, tests, release commit, tag,
next-version commit and push.

An aborted release leaves the completed steps in place; re-running
picks up the versions already chosen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := buildContext(opts)
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			if publish {
				rt.Config.PublishReleases = true
			}
			if rt.Config.PublishReleases {
				// Best effort: without credentials the publish step
				// degrades to an advisory.
				if gh, ghErr := git.NewRealGitHubClient(cmd.Context(), rt.RepoRoot); ghErr == nil {
					rt.GitHub = gh
				} else {
					rt.Splog.Debug("GitHub client unavailable: %v", ghErr)
				}
			}

			st, err := actions.LoadPersistedState(rt, opts.useDefaults(), opts.SkipTests)
			if err != nil {
				return err
			}

			steps := actions.DefaultPipeline(cmd.Context(), rt)
			final, err := engine.Run(steps, st)
			if err != nil {
				rt.Splog.Error("%v", err)
				return NewExitError(1)
			}

			if err := config.ClearReleaseState(rt.RepoRoot); err != nil {
				return err
			}
			if final.Versions != nil {
				rt.Splog.Success("Released %s; now working on %s", final.Versions.Release, final.Versions.Next)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "publish a GitHub release for the tag")

	return cmd
}
