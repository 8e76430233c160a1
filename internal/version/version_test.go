package version_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	shiperrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/version"
)

func TestParse(t *testing.T) {
	t.Run("parses plain numeric versions", func(t *testing.T) {
		v, err := version.Parse("1.2.3")
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, v.Parts)
		require.Empty(t, v.Qualifier)
		require.True(t, v.IsFinal())
	})

	t.Run("parses a single component", func(t *testing.T) {
		v, err := version.Parse("7")
		require.NoError(t, err)
		require.Equal(t, []int{7}, v.Parts)
	})

	t.Run("carries the qualifier verbatim", func(t *testing.T) {
		v, err := version.Parse("1.2.0-SNAPSHOT")
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 0}, v.Parts)
		require.Equal(t, "-SNAPSHOT", v.Qualifier)
		require.False(t, v.IsFinal())
	})

	t.Run("accepts build metadata qualifiers", func(t *testing.T) {
		v, err := version.Parse("2.0.0+build.17")
		require.NoError(t, err)
		require.Equal(t, "+build.17", v.Qualifier)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		for _, input := range []string{"1", "0.1.0", "1.2.3-SNAPSHOT", "10.20.30-rc.1", "3.0.0+abc"} {
			v, err := version.Parse(input)
			require.NoError(t, err)
			require.Equal(t, input, v.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1.x.0", ".1.2", "1..2", "-SNAPSHOT", "1.2_beta"} {
			_, err := version.Parse(input)
			require.Error(t, err, "input %q", input)

			var parseErr *shiperrors.VersionParseError
			require.True(t, errors.As(err, &parseErr))
			require.Equal(t, input, parseErr.Input)
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("returns the parsed version", func(t *testing.T) {
		v := version.MustParse("1.2.3")
		require.Equal(t, "1.2.3", v.String())
	})

	t.Run("panics on malformed input", func(t *testing.T) {
		require.Panics(t, func() { version.MustParse("nope") })
	})
}

func TestWithoutQualifier(t *testing.T) {
	t.Run("strips the qualifier", func(t *testing.T) {
		v := version.MustParse("1.2.0-SNAPSHOT")
		require.Equal(t, "1.2.0", v.WithoutQualifier().String())
	})

	t.Run("is idempotent", func(t *testing.T) {
		v := version.MustParse("1.2.0-SNAPSHOT")
		once := v.WithoutQualifier()
		twice := once.WithoutQualifier()
		require.Equal(t, once, twice)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		v := version.MustParse("1.2.0-SNAPSHOT")
		_ = v.WithoutQualifier()
		require.Equal(t, "1.2.0-SNAPSHOT", v.String())
	})
}

func TestBump(t *testing.T) {
	t.Run("increments the least significant component", func(t *testing.T) {
		require.Equal(t, "1.2.4", version.MustParse("1.2.3").Bump().String())
		require.Equal(t, "2", version.MustParse("1").Bump().String())
	})

	t.Run("drops the qualifier", func(t *testing.T) {
		require.Equal(t, "1.2.1", version.MustParse("1.2.0-SNAPSHOT").Bump().String())
	})

	t.Run("does not share parts with the receiver", func(t *testing.T) {
		v := version.MustParse("1.2.3")
		bumped := v.Bump()
		bumped.Parts[0] = 99
		require.Equal(t, "1.2.3", v.String())
	})
}

func TestProposals(t *testing.T) {
	t.Run("release proposal strips the snapshot qualifier", func(t *testing.T) {
		release := version.ProposeRelease(version.MustParse("1.2.0-SNAPSHOT"))
		require.Equal(t, "1.2.0", release.String())
	})

	t.Run("release proposal of a final version is the same version", func(t *testing.T) {
		release := version.ProposeRelease(version.MustParse("1.2.0"))
		require.Equal(t, "1.2.0", release.String())
	})

	t.Run("next proposal bumps and re-qualifies", func(t *testing.T) {
		next := version.ProposeNext(version.MustParse("1.2.0"), "-SNAPSHOT")
		require.Equal(t, "1.2.1-SNAPSHOT", next.String())
	})

	t.Run("next proposal honors a custom qualifier", func(t *testing.T) {
		next := version.ProposeNext(version.MustParse("1.2.0"), "-dev")
		require.Equal(t, "1.2.1-dev", next.String())
	})

	t.Run("next proposal falls back to the snapshot qualifier", func(t *testing.T) {
		next := version.ProposeNext(version.MustParse("1.2.0"), "")
		require.Equal(t, "1.2.1"+version.SnapshotQualifier, next.String())
	})

	t.Run("proposals compose for the standard flow", func(t *testing.T) {
		current := version.MustParse("1.2.0-SNAPSHOT")
		release := version.ProposeRelease(current)
		next := version.ProposeNext(release, "-SNAPSHOT")
		require.Equal(t, "1.2.0", release.String())
		require.Equal(t, "1.2.1-SNAPSHOT", next.String())
	})
}
