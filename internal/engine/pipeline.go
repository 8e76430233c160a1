package engine

import (
	"fmt"
)

// Step is one named, ordered unit of the pipeline. Run receives the output
// state of the predecessor step and returns the state for the successor.
// Any returned error aborts the whole run.
type Step struct {
	Name string
	Run  func(st State) (State, error)
}

// Aborted is the terminal outcome of a failed run. Side effects applied by
// completed steps are deliberately left in place; Completed tells the
// operator which steps do not need to be re-run.
type Aborted struct {
	// Step is the name of the step that failed.
	Step string
	// Reason is the human-readable abort reason.
	Reason string
	// Completed lists the steps that finished before the failure.
	Completed []string
	// Err is the underlying error.
	Err error
}

func (a *Aborted) Error() string {
	return fmt.Sprintf("release aborted at %s: %s", a.Step, a.Reason)
}

func (a *Aborted) Unwrap() error {
	return a.Err
}

// Run executes the steps strictly in order against the initial state.
// On failure it returns the state as of the last completed step together
// with an *Aborted error; there is no rollback and no automatic retry.
func Run(steps []Step, initial State) (State, error) {
	st := initial
	completed := make([]string, 0, len(steps))

	for _, step := range steps {
		next, err := step.Run(st)
		if err != nil {
			return st, &Aborted{
				Step:      step.Name,
				Reason:    err.Error(),
				Completed: completed,
				Err:       err,
			}
		}
		st = next
		completed = append(completed, step.Name)
	}

	return st, nil
}
