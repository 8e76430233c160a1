// Package runtime provides a context type that holds the git runner,
// prompter, logger and configuration for use throughout the application.
// This avoids passing multiple parameters.
package runtime

import (
	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/output"
	"shipit.dev/shipit/internal/prompt"
)

// Context provides access to the collaborators the release steps call out to.
type Context struct {
	Git      engine.GitRunner
	Prompt   prompt.Prompter
	Splog    *output.Splog
	Config   *config.RepoConfig
	RepoRoot string

	// GitHub is nil when no token or GitHub remote is configured;
	// release publication is skipped in that case.
	GitHub git.GitHubClient
}

// NewContext creates a context with the given git runner and configuration.
func NewContext(runner engine.GitRunner, cfg *config.RepoConfig, repoRoot string) *Context {
	return &Context{
		Git:      runner,
		Prompt:   prompt.NewDefaultsPrompter(),
		Splog:    output.NewSplog(),
		Config:   cfg,
		RepoRoot: repoRoot,
	}
}
