package actions

import (
	"fmt"
	"strings"

	"shipit.dev/shipit/internal/engine"
	"shipit.dev/shipit/internal/runtime"
)

// TagOutcome is the result of resolving a tag-name conflict.
type TagOutcome struct {
	// Tag is the name to tag with; empty when Skip is set.
	Tag string
	// Force overwrites an existing tag of the same name.
	Force bool
	// Skip means keep the existing tag and create nothing.
	Skip bool
}

// ResolveTag decides what to do about the candidate tag name. A free tag
// name is used as-is. For an existing tag the operator chooses between
// overwriting, keeping the existing tag, aborting, or supplying a new
// candidate, in which case resolution starts over. The loop is unbounded
// on purpose; only the operator decides when to stop trying names.
func ResolveTag(rt *runtime.Context, candidate string) (TagOutcome, error) {
	for {
		exists, err := rt.Git.TagExists(candidate)
		if err != nil {
			return TagOutcome{}, err
		}
		if !exists {
			return TagOutcome{Tag: candidate}, nil
		}

		answer, err := rt.Prompt.AskFreeform(fmt.Sprintf(
			"Tag %s exists. Overwrite (o), keep it and skip tagging (k), abort (a), or enter a new tag name", candidate))
		if err != nil {
			return TagOutcome{}, err
		}

		switch strings.TrimSpace(answer) {
		case "o", "O", "overwrite":
			rt.Splog.Warn("Overwriting a published tag can confuse anyone who already fetched %s", candidate)
			return TagOutcome{Tag: candidate, Force: true}, nil
		case "k", "K", "keep":
			rt.Splog.Warn("The existing tag %s may not point at this release's commit", candidate)
			return TagOutcome{Skip: true}, nil
		case "a", "A", "abort", "":
			return TagOutcome{}, fmt.Errorf("tagging aborted")
		default:
			candidate = strings.TrimSpace(answer)
		}
	}
}

// TagReleaseStep tags the release commit, resolving tag-name conflicts
// interactively.
func TagReleaseStep(rt *runtime.Context) engine.Step {
	return engine.Step{
		Name: "tag-release",
		Run: func(st engine.State) (engine.State, error) {
			vs, err := st.RequireVersions()
			if err != nil {
				return st, err
			}

			outcome, err := ResolveTag(rt, rt.Config.TagPrefix+vs.Release)
			if err != nil {
				return st, err
			}
			if outcome.Skip {
				rt.Splog.Info("Skipping tagging")
				return st, nil
			}

			comment := fmt.Sprintf(rt.Config.TagComment, vs.Release)
			if err := rt.Git.CreateTag(outcome.Tag, comment, outcome.Force); err != nil {
				return st, err
			}
			rt.Splog.Info("Created tag %s", outcome.Tag)

			return st, nil
		},
	}
}
