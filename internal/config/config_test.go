package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/config"
)

// newRepoRoot creates a directory that looks like a repository root: the
// config package stores its files under .git.
func newRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	return root
}

func TestRepoConfig(t *testing.T) {
	t.Run("load without a file yields defaults", func(t *testing.T) {
		root := newRepoRoot(t)

		cfg, err := config.Load(root)
		require.NoError(t, err)
		require.Equal(t, config.DefaultConfig(), cfg)
		require.False(t, config.IsInitialized(root))
	})

	t.Run("save and load round-trip", func(t *testing.T) {
		root := newRepoRoot(t)

		saved := config.DefaultConfig()
		saved.VersionFile = "VERSION"
		saved.TagPrefix = "release-"
		saved.PublishReleases = true
		require.NoError(t, config.Save(root, saved))
		require.True(t, config.IsInitialized(root))

		loaded, err := config.Load(root)
		require.NoError(t, err)
		require.Equal(t, "VERSION", loaded.VersionFile)
		require.Equal(t, "release-", loaded.TagPrefix)
		require.True(t, loaded.PublishReleases)
	})

	t.Run("unset fields fall back to defaults", func(t *testing.T) {
		root := newRepoRoot(t)
		require.NoError(t, config.Save(root, &config.RepoConfig{TagPrefix: "release-"}))

		loaded, err := config.Load(root)
		require.NoError(t, err)
		require.Equal(t, "release-", loaded.TagPrefix)
		require.Equal(t, "version.txt", loaded.VersionFile)
		require.Equal(t, "version", loaded.VersionDeclaration)
		require.Equal(t, "-SNAPSHOT", loaded.SnapshotSuffix)
		require.Equal(t, []string{"go", "test", "./..."}, loaded.TestCommand)
		require.Equal(t, []string{"go.mod"}, loaded.DependencyManifests)
	})

	t.Run("load fails on a corrupt file", func(t *testing.T) {
		root := newRepoRoot(t)
		path := filepath.Join(root, ".git", ".shipit_config")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := config.Load(root)
		require.Error(t, err)
	})
}

func TestReleaseState(t *testing.T) {
	t.Run("load without a file yields nil", func(t *testing.T) {
		root := newRepoRoot(t)

		state, err := config.LoadReleaseState(root)
		require.NoError(t, err)
		require.Nil(t, state)
	})

	t.Run("save and load round-trip", func(t *testing.T) {
		root := newRepoRoot(t)

		require.NoError(t, config.SaveReleaseState(root, &config.ReleaseState{
			ReleaseVersion: "1.2.0",
			NextVersion:    "1.2.1-SNAPSHOT",
			ReleaseHash:    "abc123",
		}))

		state, err := config.LoadReleaseState(root)
		require.NoError(t, err)
		require.NotNil(t, state)
		require.Equal(t, "1.2.0", state.ReleaseVersion)
		require.Equal(t, "1.2.1-SNAPSHOT", state.NextVersion)
		require.Equal(t, "abc123", state.ReleaseHash)
	})

	t.Run("clear removes the state", func(t *testing.T) {
		root := newRepoRoot(t)
		require.NoError(t, config.SaveReleaseState(root, &config.ReleaseState{
			ReleaseVersion: "1.2.0",
			NextVersion:    "1.2.1-SNAPSHOT",
		}))

		require.NoError(t, config.ClearReleaseState(root))

		state, err := config.LoadReleaseState(root)
		require.NoError(t, err)
		require.Nil(t, state)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		root := newRepoRoot(t)
		require.NoError(t, config.ClearReleaseState(root))
		require.NoError(t, config.ClearReleaseState(root))
	})
}
