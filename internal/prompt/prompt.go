// Package prompt abstracts operator interaction. The release steps only see
// the Prompter interface; the survey-backed implementation is used on a
// terminal, and DefaultsPrompter answers everything with its default so a
// non-interactive run never blocks.
package prompt

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	shiperrors "shipit.dev/shipit/internal/errors"
)

// Prompter asks the operator questions. All methods block until the
// operator answers; implementations for non-interactive use must return
// immediately instead.
type Prompter interface {
	// Confirm asks a yes/no question. Empty input yields the default;
	// anything other than a recognized yes token is treated as no.
	Confirm(message string, def bool) (bool, error)

	// Ask asks for a line of input. Empty input yields the default.
	Ask(message string, def string) (string, error)

	// AskFreeform asks for a line of input with no default. It returns
	// an error wrapping errors.ErrNoInput when the input stream is
	// closed; callers must treat that as a fatal abort.
	AskFreeform(message string) (string, error)
}

// SurveyPrompter implements Prompter on an interactive terminal.
type SurveyPrompter struct{}

// NewSurveyPrompter creates a terminal-backed prompter.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// Confirm reads a single line rather than using survey's confirm widget:
// the widget re-prompts on unrecognized input, but an unrecognized answer
// here must resolve to "no" so mistyped input lands on the safer branch.
func (p *SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	var answer string
	q := &survey.Input{
		Message: fmt.Sprintf("%s (%s)", message, hint),
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return false, fmt.Errorf("%w: %v", shiperrors.ErrNoInput, err)
	}
	return parseYesNo(answer, def), nil
}

// parseYesNo resolves a confirm answer: empty input yields the default, a
// yes token yields yes, anything else is no.
func parseYesNo(answer string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (p *SurveyPrompter) Ask(message string, def string) (string, error) {
	var answer string
	q := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return "", fmt.Errorf("%w: %v", shiperrors.ErrNoInput, err)
	}
	return answer, nil
}

func (p *SurveyPrompter) AskFreeform(message string) (string, error) {
	var answer string
	q := &survey.Input{
		Message: message,
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return "", fmt.Errorf("%w: %v", shiperrors.ErrNoInput, err)
	}
	return answer, nil
}

// DefaultsPrompter answers every prompt with its suggested default without
// blocking. Freeform questions have no default, so they fail the same way
// a closed input stream would.
type DefaultsPrompter struct{}

// NewDefaultsPrompter creates a prompter for non-interactive runs.
func NewDefaultsPrompter() *DefaultsPrompter {
	return &DefaultsPrompter{}
}

func (p *DefaultsPrompter) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

func (p *DefaultsPrompter) Ask(_ string, def string) (string, error) {
	return def, nil
}

func (p *DefaultsPrompter) AskFreeform(_ string) (string, error) {
	return "", shiperrors.ErrNoInput
}
