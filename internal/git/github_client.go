package git

import "context"

// ReleaseInfo contains information about a published release.
// This is a simplified struct to avoid coupling to the go-github library.
type ReleaseInfo struct {
	ID      int64
	TagName string
	HTMLURL string
}

// CreateReleaseOptions contains options for publishing a release
type CreateReleaseOptions struct {
	TagName    string
	Name       string
	Body       string
	Prerelease bool
}

// GitHubClient is an interface for GitHub API interactions
type GitHubClient interface {
	// CreateRelease publishes a release for an existing tag
	CreateRelease(ctx context.Context, opts CreateReleaseOptions) (*ReleaseInfo, error)

	// GetReleaseByTag returns the release for a tag, or nil if none exists
	GetReleaseByTag(ctx context.Context, tagName string) (*ReleaseInfo, error)

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}
