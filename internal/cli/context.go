package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/prompt"
	"shipit.dev/shipit/internal/runtime"
)

// rootOptions holds the persistent flag values shared by every command.
type rootOptions struct {
	UseDefaults bool
	SkipTests   bool
}

// interactiveTerminal reports whether both stdin and stdout are attached
// to a terminal. Prompting a pipe would block forever, so non-terminal
// runs fall back to default answers.
func interactiveTerminal() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// buildContext assembles the runtime context for a command: repo root,
// configuration, git runner and the appropriate prompter.
func buildContext(opts *rootOptions) (*runtime.Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	cfg, err := config.Load(repoRoot)
	if err != nil {
		return nil, err
	}

	rt := runtime.NewContext(engine.NewGitRunner(repoRoot), cfg, repoRoot)
	if !opts.UseDefaults && interactiveTerminal() {
		rt.Prompt = prompt.NewSurveyPrompter()
	}

	return rt, nil
}

// useDefaults reports whether prompts should auto-resolve: either the
// operator asked for it or there is no terminal to ask on.
func (o *rootOptions) useDefaults() bool {
	return o.UseDefaults || !interactiveTerminal()
}
