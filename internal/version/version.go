// Package version implements parsing and bump policies for release version strings.
//
// A version is one or more dot-separated numeric components followed by an
// optional qualifier (a suffix starting with '-' or '+', e.g. "-SNAPSHOT").
// The qualifier is carried verbatim so that any version produced by the
// policies round-trips through Parse and String without loss.
package version

import (
	"regexp"
	"strconv"
	"strings"

	shiperrors "shipit.dev/shipit/internal/errors"
)

// SnapshotQualifier is the default development-version qualifier.
const SnapshotQualifier = "-SNAPSHOT"

var versionPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)*)((?:[-+].*)?)$`)

// Version is the structural form of a version string.
type Version struct {
	// Parts are the numeric components, most significant first.
	Parts []int
	// Qualifier is the verbatim suffix including its leading separator,
	// or "" for a final version.
	Qualifier string
}

// Parse parses a version string. It fails on empty input, non-numeric
// components, and qualifiers that do not start with '-' or '+'.
func Parse(input string) (Version, error) {
	m := versionPattern.FindStringSubmatch(input)
	if m == nil {
		return Version{}, shiperrors.NewVersionParseError(input)
	}

	components := strings.Split(m[1], ".")
	parts := make([]int, len(components))
	for i, c := range components {
		n, err := strconv.Atoi(c)
		if err != nil {
			return Version{}, shiperrors.NewVersionParseError(input)
		}
		parts[i] = n
	}

	return Version{Parts: parts, Qualifier: m[2]}, nil
}

// MustParse parses a version string and panics on failure.
// Intended for constants and test fixtures.
func MustParse(input string) Version {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// String formats the version back into its canonical string form.
func (v Version) String() string {
	components := make([]string, len(v.Parts))
	for i, p := range v.Parts {
		components[i] = strconv.Itoa(p)
	}
	return strings.Join(components, ".") + v.Qualifier
}

// IsFinal reports whether the version carries no qualifier.
func (v Version) IsFinal() bool {
	return v.Qualifier == ""
}

// WithoutQualifier returns a copy of the version with the qualifier removed.
func (v Version) WithoutQualifier() Version {
	return Version{Parts: clone(v.Parts)}
}

// Bump returns a copy with the least significant numeric component
// incremented and the qualifier removed.
func (v Version) Bump() Version {
	parts := clone(v.Parts)
	parts[len(parts)-1]++
	return Version{Parts: parts}
}

// ProposeRelease computes the release version for the given current version
// by stripping any pre-release qualifier. Stripping a final version is a no-op.
func ProposeRelease(current Version) Version {
	return current.WithoutQualifier()
}

// ProposeNext computes the next development version for the given release
// version: the least significant component is incremented and the snapshot
// qualifier is appended. An empty qualifier falls back to SnapshotQualifier.
func ProposeNext(release Version, qualifier string) Version {
	if qualifier == "" {
		qualifier = SnapshotQualifier
	}
	next := release.Bump()
	next.Qualifier = qualifier
	return next
}

func clone(parts []int) []int {
	out := make([]int, len(parts))
	copy(out, parts)
	return out
}
