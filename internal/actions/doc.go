// Package actions implements the standard release steps: git checks,
// snapshot dependency check, version inquiry, version write, test run,
// commit, tag, push and release publication. Each constructor returns an
// engine.Step closure over the runtime context, so the pipeline itself
// stays ignorant of what a step does.
package actions
