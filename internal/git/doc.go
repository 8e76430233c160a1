// Package git wraps the version-control operations shipit needs: repository
// discovery, working-tree status, staging, commits, tags and pushes.
//
// Repository discovery goes through go-git; everything that mutates the
// repository shells out to the git binary through a CommandRunner so that
// failures surface the same stderr and exit code the operator would see.
package git
