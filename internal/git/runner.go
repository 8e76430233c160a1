package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	shiperrors "shipit.dev/shipit/internal/errors"
)

// DefaultCommandTimeout is applied to git commands whose context carries no deadline.
const DefaultCommandTimeout = 60 * time.Second

// CommandRunner executes git commands in a fixed working directory. All
// repository operations hang off it so they resolve against the same root
// no matter where the process was started.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a runner that executes git commands in dir.
// An empty dir means the current working directory.
func NewCommandRunner(dir string) *CommandRunner {
	return &CommandRunner{workingDir: dir}
}

// Run executes a git command and returns its trimmed stdout.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	output, err := r.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

func (r *CommandRunner) run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", shiperrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), exitCode, err)
	}
	return stdout.String(), nil
}
