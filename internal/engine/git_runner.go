package engine

import (
	"shipit.dev/shipit/internal/git"
)

// GitRunner defines the interface for git operations used by the release
// steps. This allows the steps to be used with both real git and mock
// implementations.
type GitRunner interface {
	// Repository state
	IsRepository() bool
	IsDirty() (bool, error)
	Status() (string, error)
	FileStatus(path string) (string, error)
	CurrentHash() (string, error)
	CurrentBranch() (string, error)

	// Mutations
	StageFile(path string) error
	Commit(message string) error
	TagExists(name string) (bool, error)
	CreateTag(name, comment string, force bool) error

	// Remote
	HasUpstream() (bool, error)
	Push() error
	PushTags() error
}

// realGitRunner executes git anchored at a fixed repository root. The steps
// resolve file writes against the repo root, so the git side must do the
// same: a release started from a subdirectory would otherwise stage paths
// relative to the wrong directory.
type realGitRunner struct {
	root   string
	runner *git.CommandRunner
}

// NewGitRunner returns a GitRunner backed by the repository at repoRoot.
func NewGitRunner(repoRoot string) GitRunner {
	return &realGitRunner{
		root:   repoRoot,
		runner: git.NewCommandRunner(repoRoot),
	}
}

func (r *realGitRunner) IsRepository() bool {
	_, err := git.GetRepoRootFrom(r.root)
	return err == nil
}

func (r *realGitRunner) IsDirty() (bool, error) {
	return r.runner.IsDirty()
}

func (r *realGitRunner) Status() (string, error) {
	return r.runner.Status()
}

func (r *realGitRunner) FileStatus(path string) (string, error) {
	return r.runner.FileStatus(path)
}

func (r *realGitRunner) CurrentHash() (string, error) {
	return r.runner.CurrentHash()
}

func (r *realGitRunner) CurrentBranch() (string, error) {
	return r.runner.CurrentBranch()
}

func (r *realGitRunner) StageFile(path string) error {
	return r.runner.StageFile(path)
}

func (r *realGitRunner) Commit(message string) error {
	return r.runner.Commit(message)
}

func (r *realGitRunner) TagExists(name string) (bool, error) {
	return r.runner.TagExists(name)
}

func (r *realGitRunner) CreateTag(name, comment string, force bool) error {
	return r.runner.CreateTag(name, comment, force)
}

func (r *realGitRunner) HasUpstream() (bool, error) {
	return r.runner.HasUpstream()
}

func (r *realGitRunner) Push() error {
	return r.runner.Push()
}

func (r *realGitRunner) PushTags() error {
	return r.runner.PushTags()
}
