// Package config provides repository configuration management,
// including reading and writing shipit configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".shipit_config"

// RepoConfig represents the repository configuration. Every field is
// optional; zero values fall back to the defaults below.
type RepoConfig struct {
	// VersionFile is the path of the version artifact, relative to the repo root.
	VersionFile string `json:"versionFile,omitempty"`
	// VersionDeclaration is the prefix of the version line, e.g. "version".
	VersionDeclaration string `json:"versionDeclaration,omitempty"`
	// TagPrefix is prepended to the release version to form the tag name.
	TagPrefix string `json:"tagPrefix,omitempty"`
	// TagComment is the annotated-tag message template (one %s, the release version).
	TagComment string `json:"tagComment,omitempty"`
	// ReleaseCommitMessage is the release commit template (one %s, the release version).
	ReleaseCommitMessage string `json:"releaseCommitMessage,omitempty"`
	// NextCommitMessage is the next-version commit template (one %s, the next version).
	NextCommitMessage string `json:"nextCommitMessage,omitempty"`
	// SnapshotSuffix marks development versions and unstable dependencies.
	SnapshotSuffix string `json:"snapshotSuffix,omitempty"`
	// TestCommand is the command run by the test step.
	TestCommand []string `json:"testCommand,omitempty"`
	// DependencyManifests are the files scanned for snapshot dependencies.
	DependencyManifests []string `json:"dependencyManifests,omitempty"`
	// PublishReleases enables GitHub release publication in the full pipeline.
	PublishReleases bool `json:"publishReleases,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *RepoConfig {
	return &RepoConfig{
		VersionFile:          "version.txt",
		VersionDeclaration:   "version",
		TagPrefix:            "v",
		TagComment:           "Releasing %s",
		ReleaseCommitMessage: "Releasing %s",
		NextCommitMessage:    "Setting version to %s",
		SnapshotSuffix:       "-SNAPSHOT",
		TestCommand:          []string{"go", "test", "./..."},
		DependencyManifests:  []string{"go.mod"},
	}
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// Load reads the repository configuration, filling unset fields with
// defaults. A missing file yields the default configuration.
func Load(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var cfg RepoConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the repository configuration.
func Save(repoRoot string, cfg *RepoConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}
	return os.WriteFile(configPath(repoRoot), data, 0600)
}

// IsInitialized reports whether a configuration file exists for the repo.
func IsInitialized(repoRoot string) bool {
	_, err := os.Stat(configPath(repoRoot))
	return err == nil
}

func (c *RepoConfig) applyDefaults() {
	def := DefaultConfig()
	if c.VersionFile == "" {
		c.VersionFile = def.VersionFile
	}
	if c.VersionDeclaration == "" {
		c.VersionDeclaration = def.VersionDeclaration
	}
	if c.TagPrefix == "" {
		c.TagPrefix = def.TagPrefix
	}
	if c.TagComment == "" {
		c.TagComment = def.TagComment
	}
	if c.ReleaseCommitMessage == "" {
		c.ReleaseCommitMessage = def.ReleaseCommitMessage
	}
	if c.NextCommitMessage == "" {
		c.NextCommitMessage = def.NextCommitMessage
	}
	if c.SnapshotSuffix == "" {
		c.SnapshotSuffix = def.SnapshotSuffix
	}
	if len(c.TestCommand) == 0 {
		c.TestCommand = def.TestCommand
	}
	if len(c.DependencyManifests) == 0 {
		c.DependencyManifests = def.DependencyManifests
	}
}
