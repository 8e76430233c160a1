package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/versionfile"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter shipit configuration for this repository",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := buildContext(opts)
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			if config.IsInitialized(rt.RepoRoot) {
				rt.Splog.Info("Shipit is already initialized for this repository")
				return nil
			}

			if err := config.Save(rt.RepoRoot, rt.Config); err != nil {
				return err
			}

			versionPath := filepath.Join(rt.RepoRoot, rt.Config.VersionFile)
			if _, err := os.Stat(versionPath); os.IsNotExist(err) {
				initial, err := rt.Prompt.Ask("Initial version", "0.1.0"+rt.Config.SnapshotSuffix)
				if err != nil {
					return err
				}
				if err := versionfile.Write(versionPath, rt.Config.VersionDeclaration, initial); err != nil {
					return err
				}
				rt.Splog.Info("Created %s with version %s", rt.Config.VersionFile, initial)
			}

			rt.Splog.Success("Initialized shipit configuration")
			return nil
		},
	}
}
