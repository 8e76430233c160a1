package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/versionfile"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current version and any in-flight release",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := buildContext(opts)
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			versionPath := filepath.Join(rt.RepoRoot, rt.Config.VersionFile)
			current, err := versionfile.Read(versionPath, rt.Config.VersionDeclaration)
			if err != nil {
				rt.Splog.Warn("No readable version file at %s; run 'shipit init'", rt.Config.VersionFile)
			} else {
				rt.Splog.Info("Current version: %s", current)
			}

			dirty, err := rt.Git.IsDirty()
			if err != nil {
				return err
			}
			if dirty {
				rt.Splog.Warn("Working tree has uncommitted changes")
			} else {
				rt.Splog.Info("Working tree is clean")
			}

			pending, err := config.LoadReleaseState(rt.RepoRoot)
			if err != nil {
				return err
			}
			if pending == nil {
				rt.Splog.Info("No release in flight")
				return nil
			}

			rt.Splog.Info("Release in flight: %s (next %s)", pending.ReleaseVersion, pending.NextVersion)
			if pending.ReleaseHash != "" {
				rt.Splog.Info("Release commit: %s", pending.ReleaseHash)
			}
			return nil
		},
	}
}
