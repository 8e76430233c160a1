package actions_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/config"
	shiperrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/versionfile"
)

// fakeGit implements engine.GitRunner against a plain directory. Staging and
// committing track real file contents under root, so the "no change, no
// commit" behavior is exercised for real instead of being scripted.
type fakeGit struct {
	root string

	isRepo   bool
	dirty    bool
	status   string
	branch   string
	upstream bool

	hash      string
	staged    map[string]string
	committed map[string]string
	commits   []string
	tags      map[string]string

	pushed     bool
	pushedTags bool
}

func newFakeGit(root string) *fakeGit {
	return &fakeGit{
		root:      root,
		isRepo:    true,
		branch:    "main",
		hash:      "a7b46a962ad35e8a87be2ab00e406cba2a5c0846",
		staged:    map[string]string{},
		committed: map[string]string{},
		tags:      map[string]string{},
	}
}

func (f *fakeGit) IsRepository() bool { return f.isRepo }

func (f *fakeGit) IsDirty() (bool, error) { return f.dirty, nil }

func (f *fakeGit) Status() (string, error) { return f.status, nil }

func (f *fakeGit) FileStatus(path string) (string, error) {
	staged, ok := f.staged[path]
	if !ok {
		return "", nil
	}
	if staged == f.committed[path] {
		return "", nil
	}
	return "M  " + path, nil
}

func (f *fakeGit) CurrentHash() (string, error) { return f.hash, nil }

func (f *fakeGit) CurrentBranch() (string, error) { return f.branch, nil }

func (f *fakeGit) StageFile(path string) error {
	data, err := os.ReadFile(filepath.Join(f.root, path))
	if err != nil {
		return err
	}
	f.staged[path] = string(data)
	return nil
}

func (f *fakeGit) Commit(message string) error {
	for path, content := range f.staged {
		f.committed[path] = content
	}
	f.staged = map[string]string{}
	f.commits = append(f.commits, message)
	f.hash = fmt.Sprintf("%040d", len(f.commits))
	return nil
}

func (f *fakeGit) TagExists(name string) (bool, error) {
	_, ok := f.tags[name]
	return ok, nil
}

func (f *fakeGit) CreateTag(name, comment string, force bool) error {
	if _, ok := f.tags[name]; ok && !force {
		return fmt.Errorf("tag %s already exists", name)
	}
	f.tags[name] = comment
	return nil
}

func (f *fakeGit) HasUpstream() (bool, error) { return f.upstream, nil }

func (f *fakeGit) Push() error {
	f.pushed = true
	return nil
}

func (f *fakeGit) PushTags() error {
	f.pushedTags = true
	return nil
}

// scriptedPrompter replays queued answers. Running out of answers is an
// error so a test fails loudly on an unexpected prompt.
type scriptedPrompter struct {
	confirms  []bool
	asks      []string
	freeforms []string
}

func (p *scriptedPrompter) Confirm(_ string, _ bool) (bool, error) {
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt")
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptedPrompter) Ask(_ string, def string) (string, error) {
	if len(p.asks) == 0 {
		return "", fmt.Errorf("unexpected ask prompt")
	}
	answer := p.asks[0]
	p.asks = p.asks[1:]
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *scriptedPrompter) AskFreeform(_ string) (string, error) {
	if len(p.freeforms) == 0 {
		return "", shiperrors.ErrNoInput
	}
	answer := p.freeforms[0]
	p.freeforms = p.freeforms[1:]
	return answer, nil
}

// fakeGitHub records release publications.
type fakeGitHub struct {
	existing map[string]*git.ReleaseInfo
	created  []git.CreateReleaseOptions
}

func newFakeGitHub() *fakeGitHub {
	return &fakeGitHub{existing: map[string]*git.ReleaseInfo{}}
}

func (f *fakeGitHub) CreateRelease(_ context.Context, opts git.CreateReleaseOptions) (*git.ReleaseInfo, error) {
	f.created = append(f.created, opts)
	info := &git.ReleaseInfo{
		ID:      int64(len(f.created)),
		TagName: opts.TagName,
		HTMLURL: "https://github.com/acme/widget/releases/tag/" + opts.TagName,
	}
	f.existing[opts.TagName] = info
	return info, nil
}

func (f *fakeGitHub) GetReleaseByTag(_ context.Context, tagName string) (*git.ReleaseInfo, error) {
	return f.existing[tagName], nil
}

func (f *fakeGitHub) GetOwnerRepo() (string, string) { return "acme", "widget" }

// newTestContext builds a runtime context over a throwaway repo root with a
// fake git runner and the default configuration.
func newTestContext(t *testing.T) (*runtime.Context, *fakeGit) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))

	fake := newFakeGit(root)
	rt := runtime.NewContext(fake, config.DefaultConfig(), root)
	t.Cleanup(func() { rt.Splog.Close() })

	return rt, fake
}

// writeVersion seeds the version file and lets the fake treat it as committed.
func writeVersion(t *testing.T, rt *runtime.Context, fake *fakeGit, version string) {
	t.Helper()

	path := filepath.Join(rt.RepoRoot, rt.Config.VersionFile)
	require.NoError(t, versionfile.Write(path, rt.Config.VersionDeclaration, version))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fake.committed[rt.Config.VersionFile] = string(data)
}

func readVersion(t *testing.T, rt *runtime.Context) string {
	t.Helper()

	path := filepath.Join(rt.RepoRoot, rt.Config.VersionFile)
	v, err := versionfile.Read(path, rt.Config.VersionDeclaration)
	require.NoError(t, err)
	return v
}
