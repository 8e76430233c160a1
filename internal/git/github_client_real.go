package git

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RealGitHubClient implements GitHubClient using the real GitHub API
type RealGitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewRealGitHubClient creates a new RealGitHubClient for the repository at
// repoRoot. It fails when no token is configured or the tracked remote does
// not point at a GitHub repository.
func NewRealGitHubClient(ctx context.Context, repoRoot string) (*RealGitHubClient, error) {
	token, err := getGitHubToken()
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	repoInfo, err := getRepoInfoWithHostname(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	client, err := createGitHubClient(ctx, repoInfo.Hostname, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &RealGitHubClient{
		client: client,
		owner:  repoInfo.Owner,
		repo:   repoInfo.Repo,
	}, nil
}

// GetOwnerRepo returns the repository owner and name
func (c *RealGitHubClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// CreateRelease publishes a release for an existing tag
func (c *RealGitHubClient) CreateRelease(ctx context.Context, opts CreateReleaseOptions) (*ReleaseInfo, error) {
	release := &github.RepositoryRelease{
		TagName:    github.String(opts.TagName),
		Name:       github.String(opts.Name),
		Prerelease: github.Bool(opts.Prerelease),
	}
	if opts.Body != "" {
		release.Body = github.String(opts.Body)
	}

	created, _, err := c.client.Repositories.CreateRelease(ctx, c.owner, c.repo, release)
	if err != nil {
		return nil, fmt.Errorf("failed to create release for tag %s: %w", opts.TagName, err)
	}

	return &ReleaseInfo{
		ID:      created.GetID(),
		TagName: created.GetTagName(),
		HTMLURL: created.GetHTMLURL(),
	}, nil
}

// GetReleaseByTag returns the release for a tag, or nil if none exists
func (c *RealGitHubClient) GetReleaseByTag(ctx context.Context, tagName string) (*ReleaseInfo, error) {
	release, resp, err := c.client.Repositories.GetReleaseByTag(ctx, c.owner, c.repo, tagName)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get release for tag %s: %w", tagName, err)
	}

	return &ReleaseInfo{
		ID:      release.GetID(),
		TagName: release.GetTagName(),
		HTMLURL: release.GetHTMLURL(),
	}, nil
}

// RepoInfo contains parsed information from a git remote URL
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// createGitHubClient creates a GitHub client configured for the given hostname.
// Supports both github.com and GitHub Enterprise instances.
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != "github.com" {
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}

// getGitHubToken gets the GitHub token from the environment
func getGitHubToken() (string, error) {
	if token := os.Getenv("SHIPIT_GITHUB_TOKEN"); token != "" {
		return token, nil
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("no GitHub token found; set SHIPIT_GITHUB_TOKEN or GITHUB_TOKEN")
}

// ParseGitHubRemoteURL parses a git remote URL and extracts hostname, owner, and repo.
// Supports both github.com and GitHub Enterprise URLs:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - https://github.company.com/owner/repo.git
func ParseGitHubRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	var hostname, owner, repo string

	if strings.Contains(remoteURL, "@") {
		// SSH format: git@hostname:owner/repo
		parts := strings.SplitN(remoteURL, "@", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid SSH remote URL format")
		}

		hostAndPath := parts[1]

		var path string
		if strings.Contains(hostAndPath, ":") {
			hostPathParts := strings.SplitN(hostAndPath, ":", 2)
			hostname = hostPathParts[0]
			path = hostPathParts[1]
		} else {
			pathParts := strings.SplitN(hostAndPath, "/", 2)
			if len(pathParts) < 2 {
				return nil, fmt.Errorf("invalid SSH remote URL: missing path")
			}
			hostname = pathParts[0]
			path = pathParts[1]
		}

		pathParts := strings.Split(path, "/")
		if len(pathParts) < 2 {
			return nil, fmt.Errorf("invalid SSH remote URL: path must be owner/repo")
		}
		owner = pathParts[0]
		repo = pathParts[len(pathParts)-1]
	} else {
		// HTTPS format: https://hostname/owner/repo
		remoteURL = strings.TrimPrefix(remoteURL, "https://")
		remoteURL = strings.TrimPrefix(remoteURL, "http://")

		parts := strings.Split(remoteURL, "/")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid HTTPS remote URL: must be protocol://hostname/owner/repo")
		}

		hostname = parts[0]
		owner = parts[len(parts)-2]
		repo = parts[len(parts)-1]
	}

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    owner,
		Repo:     repo,
	}, nil
}

// getRepoInfoWithHostname gets repository hostname, owner, and name from the
// remote tracked by the current branch.
func getRepoInfoWithHostname(repoRoot string) (*RepoInfo, error) {
	runner := NewCommandRunner(repoRoot)
	remoteURL, err := runner.RemoteURL(runner.Remote())
	if err != nil {
		return nil, fmt.Errorf("failed to get remote URL: %w", err)
	}

	return ParseGitHubRemoteURL(remoteURL)
}
