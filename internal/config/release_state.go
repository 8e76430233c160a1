package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const releaseStateFileName = ".shipit_release"

// ReleaseState is the persisted state of an in-flight release. It lets the
// single-step commands share the versions chosen by inquire-versions, and
// makes an interrupted release resumable from the step that failed.
type ReleaseState struct {
	ReleaseVersion string `json:"releaseVersion"`
	NextVersion    string `json:"nextVersion"`
	ReleaseHash    string `json:"releaseHash,omitempty"`
}

func releaseStatePath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", releaseStateFileName)
}

// LoadReleaseState reads the persisted release state. It returns (nil, nil)
// when no release is in flight.
func LoadReleaseState(repoRoot string) (*ReleaseState, error) {
	data, err := os.ReadFile(releaseStatePath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read release state: %w", err)
	}

	var state ReleaseState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse release state: %w", err)
	}
	return &state, nil
}

// SaveReleaseState writes the release state to disk.
func SaveReleaseState(repoRoot string, state *ReleaseState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal release state: %w", err)
	}
	return os.WriteFile(releaseStatePath(repoRoot), data, 0600)
}

// ClearReleaseState removes the release state file.
func ClearReleaseState(repoRoot string) error {
	err := os.Remove(releaseStatePath(repoRoot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear release state: %w", err)
	}
	return nil
}
