package engine

import (
	shiperrors "shipit.dev/shipit/internal/errors"
)

// Versions is the pair of versions chosen by the inquiry step.
type Versions struct {
	// Release is the version being released, e.g. "1.2.0".
	Release string
	// Next is the development version that follows, e.g. "1.2.1-SNAPSHOT".
	Next string
}

// State is the release context threaded through the pipeline. Each step
// receives the state by value and returns the (possibly updated) state;
// no two steps ever hold it concurrently.
type State struct {
	// UseDefaults auto-resolves every prompt to its suggested default.
	UseDefaults bool

	// SkipTests turns the test-run step into a no-op.
	SkipTests bool

	// Versions is nil until the inquiry step has run.
	Versions *Versions

	// ReleaseHash is the commit hash of the release commit, recorded by
	// the commit-release step.
	ReleaseHash string
}

// WithVersions returns a copy of the state with the version pair set.
func (s State) WithVersions(release, next string) State {
	s.Versions = &Versions{Release: release, Next: next}
	return s
}

// RequireVersions returns the chosen versions, or a fatal error when the
// inquiry step has not run. Steps consuming versions must call this first:
// an absent pair is a sequencing violation, not a condition to recover from.
func (s State) RequireVersions() (Versions, error) {
	if s.Versions == nil {
		return Versions{}, shiperrors.ErrVersionsNotSet
	}
	return *s.Versions, nil
}
