// Package engine implements the release step pipeline: an ordered,
// short-circuiting sequence of steps threading a State value from one step
// to the next. The engine knows nothing about what a step does; steps are
// plain values built elsewhere. A failing step halts the run immediately
// and already-applied side effects are left in place, so a partial release
// can be finished by re-running the remaining steps.
package engine
