// Package errors provides sentinel errors and custom error types for the shipit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrDirtyWorkTree indicates the working tree has uncommitted changes
	ErrDirtyWorkTree = errors.New("working tree has uncommitted changes")

	// ErrNoInput indicates the input stream was closed before an answer was read
	ErrNoInput = errors.New("no input provided")

	// ErrVersionsNotSet indicates a step that needs the chosen versions ran before the inquiry step
	ErrVersionsNotSet = errors.New("release versions have not been set; run inquire-versions first")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// VersionParseError represents a version string that could not be parsed
type VersionParseError struct {
	Input string
}

func (e *VersionParseError) Error() string {
	if e.Input == "" {
		return "cannot parse empty version string"
	}
	return fmt.Sprintf("cannot parse version %q", e.Input)
}

// NewVersionParseError creates a new VersionParseError
func NewVersionParseError(input string) *VersionParseError {
	return &VersionParseError{Input: input}
}
