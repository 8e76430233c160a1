package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/actions"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/git"
)

func newPublishCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish a GitHub release for the current release tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := buildContext(opts)
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			// Explicit invocation: missing credentials are an error here,
			// unlike the advisory skip inside the full pipeline.
			gh, err := git.NewRealGitHubClient(cmd.Context(), rt.RepoRoot)
			if err != nil {
				return fmt.Errorf("cannot publish: %w", err)
			}
			rt.GitHub = gh

			st, err := actions.LoadPersistedState(rt, opts.useDefaults(), opts.SkipTests)
			if err != nil {
				return err
			}

			step := actions.PublishReleaseStep(cmd.Context(), rt)
			if _, err := engine.Run([]engine.Step{step}, st); err != nil {
				rt.Splog.Error("%v", err)
				return NewExitError(1)
			}
			return nil
		},
	}
}
