// Package cli wires the release steps into cobra commands. Each standard
// step is an individually invocable command; `shipit release` runs the
// whole pipeline. Commands report success or abort through the process
// exit status: 0 on success, non-zero on abort.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "shipit",
		Short: "Shipit automates the release workflow of a git repository",
		Long: `Shipit automates the release workflow of a git repository:
checking the working tree, bumping versions, running tests,
committing, tagging and pushing.

Run 'shipit release' for the full pipeline, or invoke the individual
steps to resume a release that stopped halfway.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.UseDefaults, "yes", "y", false,
		"answer every prompt with its default")
	rootCmd.PersistentFlags().BoolVar(&opts.SkipTests, "skip-tests", false,
		"skip the test-run step")

	rootCmd.AddCommand(
		newInitCmd(opts),
		newStatusCmd(opts),
		newReleaseCmd(opts),
		newChecksCmd(opts),
		newSnapshotsCmd(opts),
		newInquireCmd(opts),
		newSetReleaseVersionCmd(opts),
		newSetNextVersionCmd(opts),
		newTestCmd(opts),
		newCommitReleaseCmd(opts),
		newCommitNextCmd(opts),
		newTagCmd(opts),
		newPushCmd(opts),
		newPublishCmd(opts),
	)

	return rootCmd
}
