package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/cli"
	"shipit.dev/shipit/testhelpers"
)

func TestReleaseCommand(t *testing.T) {
	t.Run("runs the full pipeline end to end", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("version.txt", "version := \"1.2.0-SNAPSHOT\"\n", "set version")
		})

		require.NoError(t, runCommand("release", "-y", "--skip-tests"))

		hasTag, err := scene.Repo.HasTag("v1.2.0")
		require.NoError(t, err)
		require.True(t, hasTag)

		messages, err := scene.Repo.CommitMessages()
		require.NoError(t, err)
		require.Equal(t, "Setting version to 1.2.1-SNAPSHOT", messages[0])
		require.Equal(t, "Releasing 1.2.0", messages[1])

		// A finished release leaves no in-flight state behind.
		_, err = os.Stat(filepath.Join(scene.Dir, ".git", ".shipit_release"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("releases from a subdirectory of the repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("version.txt", "version := \"1.2.0-SNAPSHOT\"\n", "set version")
		})

		sub := filepath.Join(scene.Dir, "sub")
		require.NoError(t, os.Mkdir(sub, 0755))
		require.NoError(t, os.Chdir(sub))

		require.NoError(t, runCommand("release", "-y", "--skip-tests"))

		hasTag, err := scene.Repo.HasTag("v1.2.0")
		require.NoError(t, err)
		require.True(t, hasTag)

		messages, err := scene.Repo.CommitMessages()
		require.NoError(t, err)
		require.Equal(t, "Setting version to 1.2.1-SNAPSHOT", messages[0])
		require.Equal(t, "Releasing 1.2.0", messages[1])

		// The root version file moved on; the subdirectory gained nothing.
		data, err := os.ReadFile(filepath.Join(scene.Dir, "version.txt"))
		require.NoError(t, err)
		require.Contains(t, string(data), "1.2.1-SNAPSHOT")
		_, err = os.Stat(filepath.Join(sub, "version.txt"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("aborts on a dirty tree without touching anything", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("version.txt", "version := \"1.2.0-SNAPSHOT\"\n", "set version")
		})
		require.NoError(t, scene.Repo.WriteFile("README.md", "# changed\n"))

		err := runCommand("release", "-y", "--skip-tests")
		require.Error(t, err)

		code, ok := cli.IsExitError(err)
		require.True(t, ok)
		require.Equal(t, 1, code)

		hasTag, err := scene.Repo.HasTag("v1.2.0")
		require.NoError(t, err)
		require.False(t, hasTag)
	})

	t.Run("aborted release resumes with the chosen versions", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("version.txt", "version := \"1.2.0-SNAPSHOT\"\n", "set version")
		})

		// Occupy the tag so the first run aborts at tag-release in
		// defaults mode.
		require.NoError(t, scene.Repo.RunGit("tag", "-a", "v1.2.0", "-m", "old"))

		err := runCommand("release", "-y", "--skip-tests")
		require.Error(t, err)

		// The release commit survived the abort.
		messages, err := scene.Repo.CommitMessages()
		require.NoError(t, err)
		require.Equal(t, "Releasing 1.2.0", messages[0])

		// Resume by hand: skip the conflicting tag and finish the release.
		require.NoError(t, runCommand("set-next-version", "-y"))
		require.NoError(t, runCommand("commit-next-version", "-y"))

		messages, err = scene.Repo.CommitMessages()
		require.NoError(t, err)
		require.Equal(t, "Setting version to 1.2.1-SNAPSHOT", messages[0])
	})
}
